package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sitefill/internal/config"
	"github.com/ziadkadry99/sitefill/internal/datefmt"
	"github.com/ziadkadry99/sitefill/internal/fetch"
	"github.com/ziadkadry99/sitefill/internal/logger"
)

// loadConfig loads the config, applies flag overrides and validates the
// result, providing a user-friendly error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sitefill init` to create a config file", err)
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"site", &cfg.SiteDir},
		{"output", &cfg.OutputDir},
		{"data-url", &cfg.DataURL},
		{"locale", &cfg.Locale},
	}
	for _, o := range overrides {
		if f := cmd.Flags().Lookup(o.flag); f != nil && f.Changed {
			*o.dst = f.Value.String()
		}
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Server.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger creates the logger for a command. --verbose forces debug output.
func newLogger(cfg *config.Config) *logger.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logger.New(level)
}

// newFetcher creates the resource fetcher from config. base may be nil when it
// is chosen per request.
func newFetcher(cfg *config.Config, base *url.URL, log *logger.Logger) *fetch.Fetcher {
	return fetch.New(base, log,
		fetch.WithTimeout(cfg.Fetch.Timeout),
		fetch.WithUserAgent("sitefill/"+Version),
	)
}

// newFormatter creates the date formatter for the configured locale and zone.
func newFormatter(cfg *config.Config) (*datefmt.Formatter, error) {
	tag, err := cfg.LocaleTag()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return datefmt.New(tag, loc), nil
}
