package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// devJWTSecret is only ever used when ENVIRONMENT is "development". Any
// other environment must provide JWT_SECRET or startup fails.
const devJWTSecret = "dev-insecure-secret-change"

type Config struct {
	DSN         string `env:"DB_DSN"`
	JWTSecret   string `env:"JWT_SECRET"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8081"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// loadConfig reads a local .env (if any) and parses the environment.
func loadConfig() (Config, error) {
	loadDotEnv()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
