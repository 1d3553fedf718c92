package config

import "time"

// Config is the top-level sitefill configuration, corresponding to .sitefill.yml.
type Config struct {
	SiteDir   string       `yaml:"site_dir" koanf:"site_dir"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	DataURL   string       `yaml:"data_url" koanf:"data_url"`
	Locale    string       `yaml:"locale" koanf:"locale"`
	Timezone  string       `yaml:"timezone" koanf:"timezone"`
	Include   []string     `yaml:"include" koanf:"include"`
	Exclude   []string     `yaml:"exclude" koanf:"exclude"`
	Fetch     FetchConfig  `yaml:"fetch" koanf:"fetch"`
	LogLevel  string       `yaml:"log_level" koanf:"log_level"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
}

// FetchConfig controls requests for the JSON resources.
type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout" koanf:"timeout"`
}

// ServerConfig holds settings for `sitefill serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
