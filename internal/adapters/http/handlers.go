// Package httpadapter exposes the engine as a JSON API. Grids travel as the
// 81-character text encoding on every endpoint; handlers are stateless and
// build a throwaway grid per request.
package httpadapter

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid/v5"

	"svw.info/sudoku-engine/internal/constraint"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

type Handler struct {
	Searcher ports.Searcher
	Designer ports.Designer
	Storage  ports.Storage
}

func New(s ports.Searcher, d ports.Designer, st ports.Storage) *Handler {
	return &Handler{Searcher: s, Designer: d, Storage: st}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/design", h.handleDesign)
	r.Post("/api/solve", h.handleSolve)
	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/candidates", h.handleCandidates)
	r.Post("/api/hint", h.handleHint)
	r.Post("/api/save", h.handleSave)
	r.Post("/api/load", h.handleLoad)
	r.Get("/api/list", h.handleList)
	return r
}

type errResp struct {
	Error string `json:"error"`
}

func respondErr(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, errResp{Error: msg})
}

// parseGrid decodes and constraint-checks an incoming encoding.
func parseGrid(enc string) (domain.Grid, string) {
	g, err := domain.Decode(enc)
	if err != nil {
		return g, err.Error()
	}
	if len(constraint.Conflicts(&g)) > 0 {
		return g, "grid violates row/column/box constraints"
	}
	return g, ""
}

// ---- Design ----

type designReq struct {
	Seed int64 `json:"seed,omitempty"`
}

type designResp struct {
	Puzzle     string `json:"puzzle"`
	Seed       int64  `json:"seed"`
	Nodes      int    `json:"nodes"`
	DurationMs int64  `json:"durationMs"`
}

func (h *Handler) handleDesign(w http.ResponseWriter, r *http.Request) {
	var req designReq
	if err := render.DecodeJSON(r.Body, &req); err != nil && err.Error() != "EOF" {
		respondErr(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, st, err := h.Designer.Design(r.Context(), rand.New(rand.NewSource(seed)))
	if err != nil {
		respondErr(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, designResp{
		Puzzle:     g.Encode(),
		Seed:       seed,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Solve ----

type solveReq struct {
	Grid string `json:"grid"`
}

type solveResp struct {
	Solution   string `json:"solution,omitempty"`
	Solvable   bool   `json:"solvable"`
	Nodes      int    `json:"nodes"`
	DurationMs int64  `json:"durationMs"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	g, msg := parseGrid(req.Grid)
	if msg != "" {
		respondErr(w, r, http.StatusBadRequest, msg)
		return
	}
	sol, st, ok := h.Searcher.Solve(r.Context(), &g)
	resp := solveResp{Solvable: ok, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()}
	if ok {
		resp.Solution = sol.Encode()
	}
	render.JSON(w, r, resp)
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	g, err := domain.Decode(req.Grid)
	if err != nil {
		respondErr(w, r, http.StatusBadRequest, err.Error())
		return
	}
	conf := constraint.Conflicts(&g)
	render.JSON(w, r, validateResp{OK: len(conf) == 0, Conflicts: conf})
}

// ---- Candidates ----

type candidatesResp struct {
	Candidates [][]domain.Cell `json:"candidates"`
}

func (h *Handler) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	g, msg := parseGrid(req.Grid)
	if msg != "" {
		respondErr(w, r, http.StatusBadRequest, msg)
		return
	}
	out := make([][]domain.Cell, domain.GridCells)
	for i := range out {
		out[i] = constraint.CandidatesAt(&g, i)
	}
	render.JSON(w, r, candidatesResp{Candidates: out})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	g, msg := parseGrid(req.Grid)
	if msg != "" {
		respondErr(w, r, http.StatusBadRequest, msg)
		return
	}
	sol, _, ok := h.Searcher.Solve(r.Context(), &g)
	if !ok {
		render.JSON(w, r, hintResp{Found: false})
		return
	}
	diff := make([]int, 0, domain.GridCells)
	for i := range g {
		if g[i] != sol[i] {
			diff = append(diff, i)
		}
	}
	if len(diff) == 0 {
		render.JSON(w, r, hintResp{Found: false})
		return
	}
	idx := diff[rand.Intn(len(diff))]
	row, col := domain.Coord(idx)
	render.JSON(w, r, hintResp{Found: true, Hint: domain.Hint{Row: row, Col: col, Value: sol[idx]}})
}

// ---- Save / Load / List ----

type saveReq struct {
	Grid string `json:"grid"`
	Name string `json:"name,omitempty"`
	Seed int64  `json:"seed,omitempty"`
}

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req saveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondErr(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	g, msg := parseGrid(req.Grid)
	if msg != "" {
		respondErr(w, r, http.StatusBadRequest, msg)
		return
	}
	p := &domain.Puzzle{
		ID:        uuid.Must(uuid.NewV4()).String(),
		Seed:      req.Seed,
		Grid:      g.Encode(),
		Name:      req.Name,
		CreatedAt: time.Now().UnixNano(),
	}
	if err := h.Storage.Save(r.Context(), p); err != nil {
		respondErr(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if err := render.DecodeJSON(r.Body, &req); err != nil || req.ID == "" {
		respondErr(w, r, http.StatusBadRequest, "invalid JSON or missing id")
		return
	}
	p, err := h.Storage.Load(r.Context(), req.ID)
	if err != nil {
		respondErr(w, r, http.StatusNotFound, err.Error())
		return
	}
	render.JSON(w, r, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Storage.List(r.Context())
	if err != nil {
		respondErr(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, listResp{Puzzles: ps})
}
