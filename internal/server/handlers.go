package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/robherley/game-of-life/internal/codec"
	"github.com/robherley/game-of-life/internal/game"
	"github.com/robherley/game-of-life/internal/render"
	"github.com/robherley/game-of-life/internal/store"
	"github.com/robherley/game-of-life/pkg/logger"
)

// Largest accepted POST body. A megabyte of seed text is a board far
// beyond anything renderable.
const maxSeedBytes = 1 << 20

// handleRender serves GET /{name}[.txt|.svg]. With ?next the game is
// advanced one generation and persisted before rendering; without it
// the stored board is rendered as-is and the reported delta is 0.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name, ext := splitExt(r.PathValue("name"))
	q := r.URL.Query()

	next, err := parseNext(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	textOpts, err := parseTextOptions(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	svgOpts, err := parseSVGOptions(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Held across find+update so concurrent ?next requests for the
	// same game cannot lose generations.
	unlock := s.locks.lock(name)
	defer unlock()

	g, err := s.Store.Find(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, fmt.Sprintf("game '%s' not found", name), http.StatusNotFound)
			return
		}
		logger.Log.WithError(err).WithField("game", name).Error("find failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var delta uint64
	if next {
		g.Next()
		delta = g.Delta
		if err := s.Store.Update(r.Context(), name, g); err != nil {
			logger.Log.WithError(err).WithField("game", name).Error("update failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	h := w.Header()
	h.Set("Cache-Control", "no-cache, no-store")
	h.Set("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
	h.Set("ETag", strconv.FormatUint(g.Generation, 10))
	h.Set("x-life-generation", strconv.FormatUint(g.Generation, 10))
	h.Set("x-life-delta", strconv.FormatUint(delta, 10))

	switch ext {
	case "svg":
		h.Set("Content-Type", "image/svg+xml")
		io.WriteString(w, render.SVG(g.Board, g.Generation, delta, svgOpts))
	default:
		h.Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, render.Text(g.Board, textOpts))
	}
}

// handleCreate serves POST /{name}: decodes the request body as a
// seed board and stores it as a new generation-0 game.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !validGameName(name) {
		http.Error(w, "game name must be alphanumeric or '-'", http.StatusBadRequest)
		return
	}

	opts, err := parseTextOptions(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSeedBytes))
	if err != nil {
		http.Error(w, "could not read request body", http.StatusBadRequest)
		return
	}

	board, err := codec.DecodeText(body, opts.Alive, opts.Dead, opts.Separator)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	unlock := s.locks.lock(name)
	defer unlock()

	g := game.New(board)
	if err := s.Store.Create(r.Context(), name, g); err != nil {
		if errors.Is(err, store.ErrExists) {
			http.Error(w, fmt.Sprintf("game '%s' already exists", name), http.StatusConflict)
			return
		}
		logger.Log.WithError(err).WithField("game", name).Error("create failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logger.Log.WithField("game", name).Infof("created %dx%d board", board.Width, board.Height)

	w.WriteHeader(http.StatusCreated)
	io.WriteString(w, render.Text(board, render.DefaultTextOptions()))
}

// splitExt separates a trailing format extension from a game name:
// "glider.svg" -> ("glider", "svg"). Names without a dot render as
// text.
func splitExt(name string) (string, string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, "txt"
}

func validGameName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
