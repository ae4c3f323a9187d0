// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Accepted values of the enumerated settings.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreMinio    = "minio"

	MeasureEstimate = "estimate"
	MeasureBrowser  = "browser"

	PDFChrome = "chrome"
	PDFNative = "native"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment variables.
type Config struct {
	// Persistence
	Store          string `json:"store,omitempty"`            // file, postgres or minio
	DataDir        string `json:"data_dir,omitempty"`         // Directory of the file store
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL
	MinioEndpoint  string `json:"minio_endpoint,omitempty"`   // host:port of the object store
	MinioAccessKey string `json:"minio_access_key,omitempty"` // Object store access key
	MinioSecretKey string `json:"minio_secret_key,omitempty"` // Object store secret key
	MinioBucket    string `json:"minio_bucket,omitempty"`     // Bucket holding the document
	MinioPrefix    string `json:"minio_prefix,omitempty"`     // Object name prefix
	MinioUseSSL    bool   `json:"minio_use_ssl,omitempty"`    // Use HTTPS for the object store

	// Layout
	Measure      string  `json:"measure,omitempty"`       // estimate or browser
	PDFRenderer  string  `json:"pdf_renderer,omitempty"`  // chrome or native
	SafetyFactor float64 `json:"safety_factor,omitempty"` // Share of the page one may fill after a split (0-1]

	// Suggestions
	APIKey       string `json:"api_key,omitempty"`        // Gemini API key
	Model        string `json:"model,omitempty"`          // Overrides the suggestion model
	RetryDelayMS *int   `json:"retry_delay_ms,omitempty"` // Pause before retrying a transient failure, 0 retries at once

	// Display
	ShowPageNumbers bool `json:"show_page_numbers,omitempty"`  // Print "Page N" on later pages
	ShowNameOnPage2 bool `json:"show_name_on_page2,omitempty"` // Repeat the name on page two
	Verbose         bool `json:"verbose,omitempty"`            // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Store:        StoreFile,
		DataDir:      ".resume-editor",
		MinioBucket:  "resumes",
		Measure:      MeasureEstimate,
		PDFRenderer:  PDFNative,
		SafetyFactor: 0.76,
		RetryDelayMS: intPtr(2000),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Empty enumerated fields are accepted since defaults fill them later.
func (c *Config) Validate() error {
	switch c.Store {
	case "", StoreFile, StorePostgres, StoreMinio:
	default:
		return fmt.Errorf("config error: 'store' must be one of file, postgres, minio")
	}
	switch c.Measure {
	case "", MeasureEstimate, MeasureBrowser:
	default:
		return fmt.Errorf("config error: 'measure' must be estimate or browser")
	}
	switch c.PDFRenderer {
	case "", PDFChrome, PDFNative:
	default:
		return fmt.Errorf("config error: 'pdf_renderer' must be chrome or native")
	}

	if c.SafetyFactor < 0 || c.SafetyFactor > 1 {
		return fmt.Errorf("config error: 'safety_factor' must be within (0, 1]")
	}
	if c.RetryDelayMS != nil && *c.RetryDelayMS < 0 {
		return fmt.Errorf("config error: 'retry_delay_ms' must be non-negative")
	}

	if c.Store == StorePostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required for the postgres store")
	}
	if c.Store == StoreMinio && c.MinioEndpoint == "" {
		return fmt.Errorf("config error: 'minio_endpoint' is required for the minio store")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.Store, defaults.Store)
	fill(&result.DataDir, defaults.DataDir)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.MinioEndpoint, defaults.MinioEndpoint)
	fill(&result.MinioAccessKey, defaults.MinioAccessKey)
	fill(&result.MinioSecretKey, defaults.MinioSecretKey)
	fill(&result.MinioBucket, defaults.MinioBucket)
	fill(&result.MinioPrefix, defaults.MinioPrefix)
	fill(&result.Measure, defaults.Measure)
	fill(&result.PDFRenderer, defaults.PDFRenderer)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.Model, defaults.Model)

	// Numeric fields: use default if zero
	if result.SafetyFactor == 0 {
		result.SafetyFactor = defaults.SafetyFactor
	}
	// Pointer fields: nil means unset, so an explicit zero survives
	if result.RetryDelayMS == nil && defaults.RetryDelayMS != nil {
		result.RetryDelayMS = intPtr(*defaults.RetryDelayMS)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// RetryDelay returns the pause before retrying a suggestion. An unset value
// falls back to the built-in default.
func (c *Config) RetryDelay() time.Duration {
	ms := c.RetryDelayMS
	if ms == nil {
		ms = Defaults().RetryDelayMS
	}
	return time.Duration(*ms) * time.Millisecond
}

func intPtr(v int) *int {
	return &v
}

// ApplyEnv fills empty connection settings from the environment.
func (c *Config) ApplyEnv() {
	env := func(dst *string, name string) {
		if *dst == "" {
			*dst = os.Getenv(name)
		}
	}
	env(&c.DatabaseURL, "DATABASE_URL")
	env(&c.APIKey, "GEMINI_API_KEY")
	env(&c.MinioEndpoint, "MINIO_ENDPOINT")
	env(&c.MinioAccessKey, "MINIO_ACCESS_KEY")
	env(&c.MinioSecretKey, "MINIO_SECRET_KEY")
	env(&c.MinioBucket, "MINIO_BUCKET")
}
