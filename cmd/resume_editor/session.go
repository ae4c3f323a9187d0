package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-editor/internal/browser"
	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/editor"
	"github.com/jonathan/resume-editor/internal/export"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/observability"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/storage"
	"github.com/jonathan/resume-editor/internal/suggest"
)

// loadConfig resolves the configuration: config file, then flags, then the
// environment, then built-in defaults.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if rootStore != "" {
		cfg.Store = rootStore
	}
	if rootDataDir != "" {
		cfg.DataDir = rootDataDir
	}
	if rootVerbose {
		cfg.Verbose = true
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

func storageOptions(cfg config.Config) storage.Options {
	return storage.Options{
		Kind:        cfg.Store,
		Dir:         cfg.DataDir,
		DatabaseURL: cfg.DatabaseURL,
		Minio: storage.MinioConfig{
			Endpoint:        cfg.MinioEndpoint,
			AccessKeyID:     cfg.MinioAccessKey,
			SecretAccessKey: cfg.MinioSecretKey,
			Bucket:          cfg.MinioBucket,
			Prefix:          cfg.MinioPrefix,
			UseSSL:          cfg.MinioUseSSL,
		},
	}
}

func newEngine(cfg config.Config) *pagination.Engine {
	var m pagination.Measurer = pagination.Estimator{}
	if cfg.Measure == config.MeasureBrowser {
		m = &browser.Measurer{Verbose: cfg.Verbose}
	}
	engine := pagination.NewEngine(m)
	engine.SafetyFactor = cfg.SafetyFactor
	return engine
}

func newPDFRenderer(cfg config.Config, name string) (export.PDFRenderer, error) {
	if name == "" {
		name = cfg.PDFRenderer
	}
	switch name {
	case config.PDFChrome:
		return &browser.PDFRenderer{Verbose: cfg.Verbose}, nil
	case config.PDFNative:
		return &export.NativeRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown PDF renderer %q (expected chrome or native)", name)
	}
}

// newSuggester builds a suggester on the Gemini client. The returned close
// function releases the client.
func newSuggester(ctx context.Context, cfg config.Config) (*suggest.Suggester, func(), error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY not set and no api_key in config")
	}
	client, err := llm.NewClient(ctx, llmConfig(cfg), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	sg := suggest.New(client)
	sg.RetryDelay = cfg.RetryDelay()
	sg.Verbose = cfg.Verbose
	return sg, func() { _ = client.Close() }, nil
}

func llmConfig(cfg config.Config) *llm.Config {
	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierLite, cfg.Model)
	}
	return llmCfg
}

func displayOptions(cfg config.Config, pageNumbers, nameOnPage2 bool) rendering.DisplayOptions {
	return rendering.DisplayOptions{
		ShowPageNumbers: pageNumbers || cfg.ShowPageNumbers,
		ShowNameOnPage2: nameOnPage2 || cfg.ShowNameOnPage2,
	}
}

// sessionFunc is the body of a command that works on the stored document.
type sessionFunc func(ctx context.Context, cfg config.Config, s *editor.Session) error

// withSession opens the configured store, runs fn and retries a failed save
// of the last change once before reporting it.
func withSession(fn sessionFunc) error {
	return runSession(false, fn)
}

// withSuggestions is withSession with a language model attached.
func withSuggestions(fn sessionFunc) error {
	return runSession(true, fn)
}

func runSession(suggestions bool, fn sessionFunc) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var sg *suggest.Suggester
	if suggestions {
		var closeClient func()
		sg, closeClient, err = newSuggester(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeClient()
	}

	blobs, err := storage.Open(ctx, storageOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}

	s, err := editor.Open(ctx, editor.Options{
		Blobs:     blobs,
		Engine:    newEngine(cfg),
		Suggester: sg,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		_ = blobs.Close()
		return err
	}
	defer s.Close()

	if err := fn(ctx, cfg, s); err != nil {
		return err
	}
	if err := s.Flush(ctx); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func printer() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}
