package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".sitefill.yml"

// DefaultInclude matches every HTML page in the site tree.
var DefaultInclude = []string{"**/*.html"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteDir:   "site",
		OutputDir: "public",
		Locale:    "en-US",
		Include:   append([]string(nil), DefaultInclude...),
		Fetch: FetchConfig{
			Timeout: 10 * time.Second,
		},
		LogLevel: "info",
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
