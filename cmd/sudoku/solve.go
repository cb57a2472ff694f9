package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <grid|->",
		Short: "Solve a puzzle from its 81-character encoding",
		Long: `Solve reads one puzzle encoding from the argument, or from stdin when
the argument is '-', and prints the first solution found.`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	enc := args[0]
	if enc == "-" {
		sc := bufio.NewScanner(os.Stdin)
		if !sc.Scan() {
			return errors.New("no input on stdin")
		}
		enc = strings.TrimSpace(sc.Text())
	}

	sess := usecase.NewSession(solver.NewEngine(), nil, nil)
	if !sess.Import(enc) {
		return errors.New("invalid grid: need 81 characters with no row/column/box duplicates")
	}
	sol, ok := sess.Solve(cmd.Context())
	if !ok {
		return errors.New("no solution")
	}
	fmt.Println(sol)
	return nil
}
