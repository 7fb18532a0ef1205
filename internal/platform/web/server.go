package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on.
	Address string

	// Rules is the timing every session plays with.
	Rules pacman.Rules

	// Seed fixes the ghost RNG of every session. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Rules:   pacman.DefaultRules(),
	}
}

// Server serves the page, the WebSocket endpoint and a small JSON API.
type Server struct {
	config   Config
	store    *storage.Store
	logger   *log.Logger
	router   *mux.Router
	upgrader websocket.Upgrader

	// base is canceled on shutdown to end every session.
	base   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer creates a server. store may be nil.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pacman-web",
		})
	}

	base, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		base:     base,
		cancel:   cancel,
		sessions: make(map[string]*session),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scores", s.handleScores).Methods(http.MethodGet)
	api.HandleFunc("/sessions", s.handleSessions).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleWebSocket)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded static files: %v", err))
	}
	s.router.PathPrefix("/").Handler(http.FileServer(http.FS(static))).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleWebSocket upgrades the connection and plays one game on it.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess := newSession(conn, s.config.Rules, seed, s.store, s.logger)
	s.track(sess, true)
	defer s.track(sess, false)

	sess.logger.Info("session started", "remote", r.RemoteAddr)
	sess.run(s.base)
	sess.logger.Info("session ended")
}

// track adds or removes a session from the active set.
func (s *Server) track(sess *session, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active {
		s.sessions[sess.id] = sess
	} else {
		delete(s.sessions, sess.id)
	}
}

// ActiveSessions returns the number of connected players.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// scoreResponse is one row of GET /api/scores.
type scoreResponse struct {
	Player     string    `json:"player"`
	Score      int       `json:"score"`
	Won        bool      `json:"won"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	out := []scoreResponse{}
	if s.store != nil {
		scores, err := s.store.TopScores("pacman", storage.DefaultTopLimit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err)
			return
		}
		for _, e := range scores {
			out = append(out, scoreResponse{
				Player:     e.Player,
				Score:      e.Score,
				Won:        e.Won,
				DurationMS: e.Duration.Milliseconds(),
				CreatedAt:  e.CreatedAt,
			})
		}
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{"active": s.ActiveSessions()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListenAndServe serves until ctx is done or the process receives
// SIGINT/SIGTERM, then shuts down and ends every session.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	s.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close ends every active session.
func (s *Server) Close() {
	s.cancel()
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client may be gone
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
