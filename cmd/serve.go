package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sitefill/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site, filling pages on each request",
	Long: `Starts a local HTTP server for the site directory. Every HTML page is
filled on request using the viewer's Accept-Language for dates; other files
are served as they are.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("site", "", "override site directory")
	serveCmd.Flags().String("data-url", "", "override base URL of the JSON resources")
	serveCmd.Flags().String("locale", "", "override fallback locale used for dates")
	serveCmd.Flags().Int("port", 0, "override server port")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.SiteDir); err != nil {
		return fmt.Errorf("site directory %s: %w\nRun `sitefill init` to configure it", cfg.SiteDir, err)
	}

	var dataURL *url.URL
	if cfg.DataURL != "" {
		if dataURL, err = cfg.DataBaseURL(); err != nil {
			return err
		}
	}
	tag, err := cfg.LocaleTag()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	srv := site.NewServer(site.ServerConfig{
		Port:     cfg.Server.Port,
		SiteDir:  cfg.SiteDir,
		Include:  cfg.Include,
		Exclude:  cfg.Exclude,
		DataURL:  dataURL,
		Locale:   tag,
		Location: loc,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, newFetcher(cfg, nil, log), log)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	addr := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "sitefill %s serving %s at %s\n", Version, cfg.SiteDir, addr)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(addr)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
