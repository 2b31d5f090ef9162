package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	Discogs DiscogsConfig `yaml:"discogs"`
	Storage StorageConfig `yaml:"storage"`
}

type DiscogsConfig struct {
	BaseURL string `yaml:"base_url"`

	// Personal access token. Anonymous requests work but are rate
	// limited more aggressively by the API.
	Token string `yaml:"token"`

	UserAgent string `yaml:"user_agent"`

	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type StorageConfig struct {
	// Type of storage: "local" or "gcs"
	Type string `yaml:"type"`

	GCS GCSConfig `yaml:"gcs"`
}

type GCSConfig struct {
	Bucket          string `yaml:"bucket"`
	ObjectPrefix    string `yaml:"object_prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// Unmarshal the YAML data into the struct. An empty or comment-only
	// file is a valid document and leaves the struct at its zero value.
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	applyDefaults(config)

	return config, nil
}

// applyDefaults fills in any values not provided by the config file.
func applyDefaults(config *Config) {
	if config.Discogs.BaseURL == "" {
		config.Discogs.BaseURL = "https://api.discogs.com"
	}

	if config.Discogs.UserAgent == "" {
		config.Discogs.UserAgent = "discogs-cue/1.0"
	}

	if config.Discogs.TimeoutSeconds == 0 {
		config.Discogs.TimeoutSeconds = 30
	}

	if config.Storage.Type == "" {
		config.Storage.Type = "local"
	}

	if token := os.Getenv("DISCOGS_TOKEN"); token != "" {
		config.Discogs.Token = token
	}
}
