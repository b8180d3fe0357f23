package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

const configPathEnv = "ROUTINELY_CONFIG"

type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
	DBDriver   string `yaml:"db_driver"`
}

func defaults() Config {
	return Config{
		APIBaseURL: "http://localhost:8080",
		ListenAddr: ":8080",
		DBPath:     "routinely.db",
		DBDriver:   "bolt",
	}
}

// Load reads the YAML config named by ROUTINELY_CONFIG, falling back to
// config.yaml in the working directory. A missing default file yields
// the built-in defaults; a missing explicitly-named file is an error.
func Load() (*Config, error) {
	path := os.Getenv(configPathEnv)
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	cfg := defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.DBDriver != "bolt" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported db_driver %q (want bolt or sqlite)", cfg.DBDriver)
	}
	return &cfg, nil
}
