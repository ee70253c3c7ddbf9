package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rybkr/puzzle15/internal/board"
	"github.com/rybkr/puzzle15/internal/scramble"
	"github.com/rybkr/puzzle15/internal/solver"
)

type solveRequest struct {
	Start string `json:"start"`
	Goal  string `json:"goal,omitempty"`
}

type solveResponse struct {
	Moves []board.Move `json:"moves"`
}

type applyRequest struct {
	Board string       `json:"board"`
	Moves []board.Move `json:"moves"`
}

type applyResponse struct {
	Board   string `json:"board"`
	Applied int    `json:"applied"`
}

type scrambleResponse struct {
	Board string       `json:"board"`
	Moves []board.Move `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes the puzzle core over HTTP and websockets.
type Server struct {
	solverOptions *solver.Options
}

// New creates a server. nil options mean solver defaults.
func New(solverOptions *solver.Options) *Server {
	if solverOptions == nil {
		solverOptions = solver.DefaultOptions()
	}
	return &Server{solverOptions: solverOptions}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/api/solve", s.handleSolve)
	r.Post("/api/apply", s.handleApply)
	r.Get("/api/scramble", s.handleScramble)
	r.Get("/ws/play", s.handlePlay)

	return r
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("puzzle15 server listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start, err := board.Parse(req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	goal := board.New()
	if req.Goal != "" {
		if goal, err = board.Parse(req.Goal); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	moves, err := solver.New(start, goal, s.solverOptions).Solve()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, solveResponse{Moves: moves})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	b, err := board.Parse(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	applied := b.ApplyAll(req.Moves)
	writeJSON(w, http.StatusOK, applyResponse{Board: b.String(), Applied: applied})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	opts := scramble.DefaultOptions()
	if v := r.URL.Query().Get("moves"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("moves must be an integer"))
			return
		}
		opts.Moves = n
	}
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("seed must be an integer"))
			return
		}
		opts.Seed = seed
	}

	b, moves, err := scramble.New(opts).Generate()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, scrambleResponse{Board: b.String(), Moves: moves})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
