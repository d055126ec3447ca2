package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eatulrajput/campusgpt"
)

// Server exposes the crawl and search control API.
type Server struct {
	router  chi.Router
	crawler campusgpt.Crawler
	index   campusgpt.SearchIndex
	pages   campusgpt.PageService
	logger  *slog.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(crawler campusgpt.Crawler, index campusgpt.SearchIndex, pages campusgpt.PageService, logger *slog.Logger) *Server {
	s := &Server{
		crawler: crawler,
		index:   index,
		pages:   pages,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Route("/scrape", func(r chi.Router) {
		r.Post("/start", s.startScrape)
		r.Get("/status", s.scrapeStatus)
		r.Post("/stop", s.stopScrape)
	})
	r.Post("/reindex", s.reindex)
	r.Get("/search", s.search)

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

type startScrapeRequest struct {
	StartURL     string  `json:"start_url"`
	RootDomain   string  `json:"root_domain"`
	MaxPages     int     `json:"max_pages"`
	DelaySeconds float64 `json:"delay"`
	SeedSitemaps bool    `json:"seed_sitemaps"`
}

func (s *Server) startScrape(w http.ResponseWriter, r *http.Request) {
	var req startScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, campusgpt.Errorf(campusgpt.EINVALID, "invalid JSON body"))
		return
	}

	cfg := campusgpt.CrawlConfig{
		SeedURL:      req.StartURL,
		RootDomain:   req.RootDomain,
		MaxPages:     req.MaxPages,
		Delay:        time.Duration(req.DelaySeconds * float64(time.Second)),
		SeedSitemaps: req.SeedSitemaps,
	}
	status, err := s.crawler.Start(r.Context(), cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}

	msg := "scrape started"
	if status.JobID == "" || !status.Running {
		msg = "scrape not started"
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"status":  status,
	})
}

func (s *Server) scrapeStatus(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.crawler.Status())
}

func (s *Server) stopScrape(w http.ResponseWriter, _ *http.Request) {
	status := s.crawler.Stop()
	msg := "stop requested"
	if !status.Running {
		msg = "no scrape running"
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": msg,
		"status":  status,
	})
}

func (s *Server) reindex(w http.ResponseWriter, r *http.Request) {
	indexed, err := s.index.Rebuild(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "index rebuilt",
		"indexed": indexed,
	})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	topN := campusgpt.DefaultTopN
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, campusgpt.Errorf(campusgpt.EINVALID, "top must be a positive integer"))
			return
		}
		topN = n
	}

	results, err := s.index.Query(r.Context(), q, topN)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"query":   q,
		"results": results,
	})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	count, err := s.pages.CountPages(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"pages":   count,
		"indexed": s.index.IndexedCount(),
	})
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write JSON failed", "error", err)
	}
}

// writeError maps an application error code to an HTTP status and
// renders the standard error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := campusgpt.ErrorCode(err)
	if code == campusgpt.EINTERNAL {
		s.logger.Error("internal error", "error", err)
	}
	s.writeJSON(w, errorStatus(code), map[string]string{
		"error": campusgpt.ErrorMessage(err),
	})
}

func errorStatus(code string) int {
	switch code {
	case campusgpt.EINVALID:
		return http.StatusBadRequest
	case campusgpt.ENOTFOUND:
		return http.StatusNotFound
	case campusgpt.ECONFLICT:
		return http.StatusConflict
	case campusgpt.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ListenAndServe runs the API server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
