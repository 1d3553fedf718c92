package site

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/sitefill/internal/datefmt"
	"github.com/ziadkadry99/sitefill/internal/dom"
	"github.com/ziadkadry99/sitefill/internal/fetch"
	"github.com/ziadkadry99/sitefill/internal/logger"
	"github.com/ziadkadry99/sitefill/internal/render"
	"github.com/ziadkadry99/sitefill/internal/walker"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port     int
	SiteDir  string
	Include  []string
	Exclude  []string
	DataURL  *url.URL       // nil resolves resources against the page URL
	Locale   language.Tag   // used when Accept-Language names nothing supported
	Location *time.Location // zone dates are rendered in
	AllowAll bool           // allow all CORS origins
}

// Server serves a site tree, rendering pages on each request.
type Server struct {
	cfg        ServerConfig
	fetcher    *fetch.Fetcher
	log        *logger.Logger
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a server for cfg.SiteDir. fetcher supplies the client
// settings; its base is replaced per request unless cfg.DataURL is set.
func NewServer(cfg ServerConfig, fetcher *fetch.Fetcher, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	if fetcher == nil {
		fetcher = fetch.New(nil, log)
	}
	s := &Server{
		cfg:     cfg,
		fetcher: fetcher,
		log:     log,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	static := http.FileServer(http.Dir(s.cfg.SiteDir))
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		s.handle(w, r, static)
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// handle renders pages and hands everything else to the static file server.
func (s *Server) handle(w http.ResponseWriter, r *http.Request, static http.Handler) {
	urlPath := path.Clean("/" + r.URL.Path)
	file := filepath.Join(s.cfg.SiteDir, filepath.FromSlash(urlPath))

	info, err := os.Stat(file)
	if err != nil {
		static.ServeHTTP(w, r)
		return
	}

	rel := strings.TrimPrefix(urlPath, "/")
	if info.IsDir() {
		// Directory pages need a trailing slash so relative resources resolve
		// inside the directory.
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		index := filepath.Join(file, "index.html")
		if _, err := os.Stat(index); err != nil {
			static.ServeHTTP(w, r)
			return
		}
		file = index
		rel = path.Join(rel, "index.html")
	}

	if !s.isPage(rel) {
		static.ServeHTTP(w, r)
		return
	}

	s.renderPage(w, r, file, rel)
}

// isPage reports whether rel is rendered rather than served verbatim.
func (s *Server) isPage(rel string) bool {
	return walker.MatchesInclude(rel, s.cfg.Include) && !walker.MatchesExclude(rel, s.cfg.Exclude)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, file, rel string) {
	f, err := os.Open(file)
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		s.log.Error("parsing page", "page", rel, "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	tag := datefmt.FromAcceptLanguage(r.Header.Get("Accept-Language"), s.cfg.Locale)
	log := s.log.With("page", rel, "request_id", middleware.GetReqID(r.Context()))
	env := render.Env{
		Fetcher: s.fetcher.WithBase(s.resourceBase(r)),
		Dates:   datefmt.New(tag, s.cfg.Location),
		Log:     log,
	}
	render.Bootstrap(r.Context(), doc, env)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		log.Error("rendering page", "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Language", tag.String())
	w.Write(buf.Bytes())
}

// resourceBase is the configured data URL, or the URL of the requested page
// on this server's own listener so resource names resolve the way a browser
// resolves them. The request's Host header never selects the origin.
func (s *Server) resourceBase(r *http.Request) *url.URL {
	if s.cfg.DataURL != nil {
		return s.cfg.DataURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: s.localHost(r), Path: r.URL.Path}
}

// localHost is the address the request arrived on, or loopback on the
// configured port when the connection address is unknown.
func (s *Server) localHost(r *http.Request) string {
	if addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr); ok && addr != nil {
		if host, port, err := net.SplitHostPort(addr.String()); err == nil {
			if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
				host = "127.0.0.1"
			}
			return net.JoinHostPort(host, port)
		}
	}
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.Port))
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("sitefill server listening", "addr", addr, "site", s.cfg.SiteDir)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
