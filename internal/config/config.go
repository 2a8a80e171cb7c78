package config

import (
	"os"
	"strconv"

	"examparse/internal/dedupe"
	"examparse/internal/taxonomy"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Exam struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		Source  string `yaml:"source"`
	} `yaml:"exam"`
	Dedupe struct {
		Threshold   float64 `yaml:"threshold"`
		MaxAttempts int     `yaml:"max_attempts"`
	} `yaml:"dedupe"`
	// Taxonomy overrides the built-in domain/service tables when non-empty.
	Taxonomy taxonomy.Taxonomy `yaml:"taxonomy"`
}

// Defaults returns the configuration used when no config.yaml exists.
func Defaults() *Config {
	cfg := &Config{}
	cfg.Exam.Name = "AWS Certified Cloud Practitioner"
	cfg.Exam.Version = "CLF-C02"
	cfg.Exam.Source = "EXAMEN REAL MAESTRO AWS"
	cfg.Dedupe.Threshold = dedupe.DefaultThreshold
	cfg.Dedupe.MaxAttempts = dedupe.DefaultMaxAttempts
	return cfg
}

// LoadConfig reads configuration in three layers: .env if present, then the
// YAML file, then environment variable overrides. A missing YAML file is not
// an error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	if threshold := os.Getenv("EXAMPARSE_DEDUPE_THRESHOLD"); threshold != "" {
		if v, err := strconv.ParseFloat(threshold, 64); err == nil {
			cfg.Dedupe.Threshold = v
		}
	}
	if attempts := os.Getenv("EXAMPARSE_DEDUPE_ATTEMPTS"); attempts != "" {
		if v, err := strconv.Atoi(attempts); err == nil {
			cfg.Dedupe.MaxAttempts = v
		}
	}

	if cfg.Dedupe.Threshold <= 0 {
		cfg.Dedupe.Threshold = dedupe.DefaultThreshold
	}
	if cfg.Dedupe.MaxAttempts <= 0 {
		cfg.Dedupe.MaxAttempts = dedupe.DefaultMaxAttempts
	}

	return cfg, nil
}

// ResolveTaxonomy returns the configured tables, falling back to the
// built-in CLF-C02 defaults for whichever half is missing.
func (c *Config) ResolveTaxonomy() taxonomy.Taxonomy {
	tax := taxonomy.Default()
	if len(c.Taxonomy.Domains) > 0 {
		tax.Domains = c.Taxonomy.Domains
	}
	if len(c.Taxonomy.Services) > 0 {
		tax.Services = c.Taxonomy.Services
	}
	return tax
}
