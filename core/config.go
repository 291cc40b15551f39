package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         int    `yaml:"port"`
	TemplatesDir string `yaml:"templatesDir"`
	PublicDir    string `yaml:"publicDir"`
	OutputDir    string `yaml:"outputDir"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
}

func defaultConfig() Config {
	return Config{
		Port:         8080,
		TemplatesDir: "templates",
		PublicDir:    "public",
		OutputDir:    ".cache",
	}
}

func LoadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig()
	}

	var cfg Config
	yaml.Unmarshal(data, &cfg)

	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = ".cache"
	}

	return cfg
}
