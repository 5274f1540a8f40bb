// Package server implements the HTTP API for storing and looking up word definitions.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/messages"
)

const (
	rootPath        = "/"
	definitionsPath = "/api/definitions"
)

// Service owns the state shared by all requests: the store, the message table and the request counter.
type Service struct {
	store    dictionary.Store
	messages *messages.Table
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time

	requestCount atomic.Int64
	// insertMu makes the exists-then-insert sequence of a POST atomic.
	insertMu sync.Mutex
}

var _ http.Handler = (*Service)(nil)

// Option configures optional fields of a Service.
type Option func(*Service)

// WithClock sets the clock used for timestamps in responses.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the logger for unexpected failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service backed by store.
func NewService(store dictionary.Store, table *messages.Table, opts ...Option) (*Service, error) {
	validate, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}

	s := &Service{
		store:    store,
		messages: table,
		validate: validate,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RequestCount returns the number of requests received so far.
func (s *Service) RequestCount() int64 {
	return s.requestCount.Load()
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.requestCount.Add(1)
	setCORSHeaders(w.Header())

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch r.URL.Path {
	case rootPath:
		s.guard(w, r, s.handleWelcome)
	case definitionsPath:
		switch r.Method {
		case http.MethodGet:
			s.guard(w, r, s.handleGetWord)
		case http.MethodPost:
			s.guard(w, r, s.handlePostWord)
		default:
			w.Header().Set("Allow", "GET, POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	default:
		writeText(w, http.StatusNotFound, s.messages.NotFound)
	}
}

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// guard turns an error or a panic from handle into a 500 response.
func (s *Service) guard(w http.ResponseWriter, r *http.Request, handle handlerFunc) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panic while handling a request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("panic", rec),
			)
			s.writeInternalError(w)
		}
	}()

	if err := handle(w, r); err != nil {
		s.logger.Error("failed to handle a request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		s.writeInternalError(w)
	}
}

type welcomeResponse struct {
	Message string `json:"message"`
}

func (s *Service) handleWelcome(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, welcomeResponse{Message: s.messages.Welcome})
}
