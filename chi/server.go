// Package chi provides the HTTP API for browsing stored match reports. It
// exposes listing, detail, aggregate, CSV export, manual parse, and delete
// endpoints over a ReportService, with CORS enabled for a separately hosted
// dashboard frontend.
package chi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server is the API server. Configure the exported fields before calling
// Open. The zero value is not usable; use NewServer.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, e.g. ":8000".
	Addr string

	Reports fbref.ReportService
	Parser  fbref.Parser
}

// NewServer creates a new Server with all routes and middleware registered.
func NewServer(reports fbref.ReportService, parser fbref.Parser) *Server {
	s := &Server{
		Reports: reports,
		Parser:  parser,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	c := corslib.New(corslib.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	})
	r.Use(c.Handler)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/matches", s.handleMatchList)
		r.Delete("/matches", s.handleMatchDeleteAll)
		r.Get("/matches/{matchID}", s.handleMatchShow)
		r.Get("/matches/{matchID}/players", s.handleMatchPlayers)
		r.Get("/stats", s.handleStats)
		r.Get("/export/csv", s.handleExportCSV)
		r.Post("/parse", s.handleParse)
	})

	s.router = r
	s.server = &http.Server{Handler: r}
	return s
}

// ServeHTTP implements http.Handler by delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on Addr. It returns once the listener is bound;
// request serving continues on a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		_ = s.server.Serve(ln)
	}()

	return nil
}

// URL returns the base URL the server is listening on. Only valid after Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
