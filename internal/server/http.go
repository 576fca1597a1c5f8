package server

import (
	"encoding/json"
	"net/http"

	"github.com/robherley/game-of-life/internal/store"
	"github.com/robherley/game-of-life/internal/version"
	"github.com/robherley/game-of-life/pkg/logger"
)

const projectURL = "https://github.com/robherley/game-of-life"

type Server struct {
	Store store.Store
	Addr  string

	locks *nameLocks
}

func New(st store.Store, addr string) *Server {
	return &Server{
		Store: st,
		Addr:  addr,
		locks: newNameLocks(),
	}
}

// Routes builds the request mux. Split out of Run so handler tests
// can serve it directly.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, projectURL, http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("GET /health", enableCORS(s.handleHealth))
	mux.HandleFunc("GET /version", enableCORS(s.handleVersion))
	mux.HandleFunc("GET /ws/{name}", s.handleStream)
	mux.HandleFunc("GET /{name}", enableCORS(s.handleRender))
	mux.HandleFunc("POST /{name}", enableCORS(s.handleCreate))

	return mux
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	logger.Log.Infof("Game of Life server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Routes())
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Warn("failed to write version response")
	}
}
