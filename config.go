package main // import "github.com/tonobo/snake-top"

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

type Appearance struct {
	APIVersion string `yaml:"apiversion" json:"apiversion"`
	Author     string `yaml:"author" json:"author"`
	Color      string `yaml:"color" json:"color"`
	Head       string `yaml:"head" json:"head"`
	Tail       string `yaml:"tail" json:"tail"`
	Version    string `yaml:"version" json:"version,omitempty"`
}

type Config struct {
	Port         string     `yaml:"port"`
	LogLevel     string     `yaml:"log_level"`
	FallbackMove string     `yaml:"fallback_move"`
	HistoryPath  string     `yaml:"history_path"`
	Seed         int64      `yaml:"seed"`
	Shout        string     `yaml:"shout"`
	Appearance   Appearance `yaml:"appearance"`
}

func DefaultConfig() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		FallbackMove: string(DefaultFallback),
		Appearance: Appearance{
			APIVersion: "1",
			Author:     "tonobo",
			Color:      "#D8A7B1",
			Head:       "tongue",
			Tail:       "default",
		},
	}
}

// LoadConfig reads path on top of the defaults. An empty path keeps the
// defaults. PORT in the environment always wins.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if _, err := ParseMove(cfg.FallbackMove); err != nil {
		return cfg, fmt.Errorf("fallback_move: %w", err)
	}
	return cfg, nil
}
