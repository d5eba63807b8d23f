package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvTitle   = "CSV2HTML_TITLE"
	EnvCredit  = "CSV2HTML_CREDIT"
	EnvStyles  = "CSV2HTML_STYLES"  // comma-separated
	EnvScripts = "CSV2HTML_SCRIPTS" // comma-separated
)

// FromEnv reads settings from the environment. If envFile is set it is
// loaded first and must exist; otherwise a .env file in the working
// directory is loaded when present. Variables already set in the process
// environment take precedence over the file.
func FromEnv(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Title:   os.Getenv(EnvTitle),
		Styles:  splitList(os.Getenv(EnvStyles)),
		Scripts: splitList(os.Getenv(EnvScripts)),
	}
	if v := os.Getenv(EnvCredit); v != "" {
		credit, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvCredit, v, err)
		}
		cfg.Credit = credit
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
