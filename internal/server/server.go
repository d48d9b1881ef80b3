// Package server implements the wordgrid HTTP API.
//
// The API wraps the layout engine for remote callers: POST a word list, get
// back the finished grid and placement log as JSON. Generated layouts are
// kept in an in-memory store for later retrieval, and responses are cached
// by request content hash — the engine is deterministic, so identical
// requests always map to identical grids.
//
// # Endpoints
//
//	POST /api/layouts        run the engine on a word list
//	GET  /api/layouts        list stored layouts, most recent first
//	GET  /api/layouts/{id}   fetch one stored layout
//	POST /api/words/filter   split words into dictionary-valid and invalid
//	GET  /healthz            liveness probe
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/cache"
	"github.com/tilework/wordgrid/pkg/dictionary"
	"github.com/tilework/wordgrid/pkg/errors"
	"github.com/tilework/wordgrid/pkg/layout"
)

// maxWordsPerRequest bounds the size of a single layout request.
const maxWordsPerRequest = 500

// Options configures a Server.
type Options struct {
	// DefaultSize and DefaultEmpty apply when a request omits them.
	DefaultSize  int
	DefaultEmpty string

	// Dict filters words on /api/words/filter. Required.
	Dict *dictionary.Dictionary

	// Cache stores layout responses. Required; use cache.NewNullCache to
	// disable caching.
	Cache cache.Cache

	// Logger receives request logs. Required.
	Logger *log.Logger
}

// Server is the wordgrid HTTP API.
type Server struct {
	opts   Options
	store  *Store
	router chi.Router
}

// New creates a configured server.
func New(opts Options) *Server {
	if opts.DefaultSize == 0 {
		opts.DefaultSize = board.DefaultSize
	}
	if opts.DefaultEmpty == "" {
		opts.DefaultEmpty = string(board.DefaultEmpty)
	}

	s := &Server{
		opts:  opts,
		store: NewStore(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(opts.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/layouts", s.handleCreateLayout)
		r.Get("/layouts", s.handleListLayouts)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Post("/words/filter", s.handleFilterWords)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}

// layoutRequest is the body of POST /api/layouts.
type layoutRequest struct {
	Words []string `json:"words"`
	Size  int      `json:"size,omitempty"`
	Empty string   `json:"empty,omitempty"`
}

// layoutResult is the computed portion of a layout, shared between the cache
// and the stored record.
type layoutResult struct {
	Grid     []string           `json:"grid"`
	Placed   []board.PlacedWord `json:"placed"`
	Unplaced []string           `json:"unplaced,omitempty"`
}

// POST /api/layouts — run the engine, store and return the result.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid JSON body"))
		return
	}
	if len(req.Words) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "field 'words' must be a non-empty list"))
		return
	}
	if len(req.Words) > maxWordsPerRequest {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "too many words: %d (max %d)", len(req.Words), maxWordsPerRequest))
		return
	}

	size := req.Size
	if size == 0 {
		size = s.opts.DefaultSize
	}
	emptyStr := req.Empty
	if emptyStr == "" {
		emptyStr = s.opts.DefaultEmpty
	}
	empty, err := board.ParseMarker(emptyStr)
	if err != nil {
		s.writeError(w, err)
		return
	}

	eng, err := layout.New(layout.Options{Size: size, Empty: empty})
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := cache.LayoutKey(req.Words, size, empty)
	result, hit := s.cachedResult(r, key)
	if !hit {
		res := eng.Layout(req.Words)
		result = layoutResult{
			Grid:     res.Board.Rows(),
			Placed:   res.Placed,
			Unplaced: res.Unplaced,
		}
		if data, err := json.Marshal(result); err == nil {
			if err := s.opts.Cache.Set(r.Context(), key, data, cache.DefaultTTL); err != nil {
				s.opts.Logger.Warn("cache set failed", "err", err)
			}
		}
	}

	stored := s.store.Save(&Layout{
		Words:    req.Words,
		Size:     size,
		Empty:    string(empty),
		Grid:     result.Grid,
		Placed:   result.Placed,
		Unplaced: result.Unplaced,
	})

	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	s.writeJSON(w, http.StatusCreated, stored)
}

// cachedResult fetches a previously computed layout for key. Cache failures
// degrade to recomputing.
func (s *Server) cachedResult(r *http.Request, key string) (layoutResult, bool) {
	var result layoutResult
	data, hit, err := s.opts.Cache.Get(r.Context(), key)
	if err != nil {
		s.opts.Logger.Warn("cache get failed", "err", err)
		return result, false
	}
	if !hit {
		return result, false
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return layoutResult{}, false
	}
	return result, true
}

// GET /api/layouts — list stored layouts.
func (s *Server) handleListLayouts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.List())
}

// GET /api/layouts/{id} — fetch one stored layout.
func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	l := s.store.Get(chi.URLParam(r, "id"))
	if l == nil {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "layout not found"))
		return
	}
	s.writeJSON(w, http.StatusOK, l)
}

// POST /api/words/filter — dictionary validity check.
func (s *Server) handleFilterWords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Words []string `json:"words"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Words) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "field 'words' must be a non-empty list"))
		return
	}

	valid, invalid := s.opts.Dict.Filter(req.Words)
	s.writeJSON(w, http.StatusOK, map[string][]string{
		"valid":   valid,
		"invalid": invalid,
	})
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.opts.Logger.Error("encode response", "err", err)
	}
}

// writeError maps structured error codes to HTTP statuses and writes a JSON
// error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  string(errors.GetCode(err)),
		"error": errors.UserMessage(err),
	})
}
