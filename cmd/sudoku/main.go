package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log      = logrus.New()
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Constraint-search engine for 9x9 puzzles",
	Long: `sudoku solves, validates and generates 9x9 Latin-square puzzles.

Grids travel as 81-character strings, row-major, digits 1-9 for filled
cells and '.' for empty ones.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		log.SetLevel(lvl)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
