package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-editor/internal/browser"
	"github.com/jonathan/resume-editor/internal/config"
	"github.com/jonathan/resume-editor/internal/document"
	"github.com/jonathan/resume-editor/internal/export"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/storage"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootFlags clears the persistent flag variables between tests.
func resetRootFlags(t *testing.T) {
	t.Helper()
	rootConfigPath, rootStore, rootDataDir, rootVerbose = "", "", "", false
	t.Cleanup(func() {
		rootConfigPath, rootStore, rootDataDir, rootVerbose = "", "", "", false
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetRootFlags(t)
	for _, name := range []string{"DATABASE_URL", "GEMINI_API_KEY", "MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET"} {
		t.Setenv(name, "")
	}

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	resetRootFlags(t)
	t.Setenv("GEMINI_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store": "file", "data_dir": "from-file", "safety_factor": 0.8, "api_key": "file-key"}`), 0644))

	rootConfigPath = path
	rootDataDir = "from-flag"
	rootVerbose = true

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.DataDir)
	assert.Equal(t, 0.8, cfg.SafetyFactor)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, config.PDFNative, cfg.PDFRenderer)
}

func TestLoadConfig_InvalidStore(t *testing.T) {
	resetRootFlags(t)
	rootStore = "s3"

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store")
}

func TestLoadConfig_PostgresNeedsURL(t *testing.T) {
	resetRootFlags(t)
	t.Setenv("DATABASE_URL", "")
	rootStore = "postgres"

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database_url")
}

func TestStorageOptions(t *testing.T) {
	cfg := config.Defaults()
	cfg.MinioEndpoint = "localhost:9000"
	cfg.MinioUseSSL = true

	opts := storageOptions(cfg)
	assert.Equal(t, storage.KindFile, opts.Kind)
	assert.Equal(t, ".resume-editor", opts.Dir)
	assert.Equal(t, "localhost:9000", opts.Minio.Endpoint)
	assert.Equal(t, "resumes", opts.Minio.Bucket)
	assert.True(t, opts.Minio.UseSSL)
}

func TestNewEngine(t *testing.T) {
	cfg := config.Defaults()
	engine := newEngine(cfg)
	assert.IsType(t, pagination.Estimator{}, engine.Measurer)
	assert.Equal(t, 0.76, engine.SafetyFactor)

	cfg.Measure = config.MeasureBrowser
	cfg.SafetyFactor = 0.9
	engine = newEngine(cfg)
	assert.IsType(t, &browser.Measurer{}, engine.Measurer)
	assert.Equal(t, 0.9, engine.SafetyFactor)
}

func TestNewPDFRenderer(t *testing.T) {
	cfg := config.Defaults()

	r, err := newPDFRenderer(cfg, "")
	require.NoError(t, err)
	assert.IsType(t, &export.NativeRenderer{}, r)

	r, err = newPDFRenderer(cfg, config.PDFChrome)
	require.NoError(t, err)
	assert.IsType(t, &browser.PDFRenderer{}, r)

	_, err = newPDFRenderer(cfg, "latex")
	assert.Error(t, err)
}

func TestDisplayOptions(t *testing.T) {
	cfg := config.Defaults()
	opts := displayOptions(cfg, true, false)
	assert.True(t, opts.ShowPageNumbers)
	assert.False(t, opts.ShowNameOnPage2)

	cfg.ShowNameOnPage2 = true
	opts = displayOptions(cfg, false, false)
	assert.False(t, opts.ShowPageNumbers)
	assert.True(t, opts.ShowNameOnPage2)
}

func TestLLMConfig(t *testing.T) {
	cfg := config.Defaults()
	assert.Equal(t, "gemini-2.5-flash-lite", llmConfig(cfg).GetModel(llm.TierLite))

	cfg.Model = "gemini-2.5-pro"
	assert.Equal(t, "gemini-2.5-pro", llmConfig(cfg).GetModel(llm.TierLite))
}

func TestNewSuggester_RequiresKey(t *testing.T) {
	_, _, err := newSuggester(t.Context(), config.Defaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestParseIndex(t *testing.T) {
	i, err := parseIndex(" 1 ", types.SectionExperience, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = parseIndex("2", types.SectionExperience, 2)
	var idxErr *document.IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, types.SectionExperience, idxErr.Section)

	_, err = parseIndex("-1", types.SectionEducation, 2)
	assert.ErrorAs(t, err, &idxErr)

	_, err = parseIndex("first", types.SectionEducation, 2)
	assert.Error(t, err)
}

func TestParseSection(t *testing.T) {
	id, err := parseSection(" Skills ")
	require.NoError(t, err)
	assert.Equal(t, types.SectionSkills, id)

	_, err = parseSection("hobbies")
	assert.Error(t, err)
}

func TestStylePatch(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "style"}
		cmd.Flags().StringVar(&styleFont, "font", "", "")
		cmd.Flags().Float64Var(&styleFontSize, "font-size", 0, "")
		cmd.Flags().Float64Var(&styleLineSpacing, "line-spacing", 0, "")
		cmd.Flags().Float64Var(&styleMargins, "margins", 0, "")
		cmd.Flags().StringVar(&stylePageSize, "page-size", "", "")
		return cmd
	}

	cmd := newCmd()
	patch, err := stylePatch(cmd)
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())

	cmd = newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--font", "georgia", "--margins", "12", "--page-size", "letter"}))
	patch, err = stylePatch(cmd)
	require.NoError(t, err)
	require.NotNil(t, patch.Font)
	assert.Equal(t, types.FontGeorgia, *patch.Font)
	require.NotNil(t, patch.Margins)
	assert.Equal(t, 12.0, *patch.Margins)
	require.NotNil(t, patch.PageSize)
	assert.Equal(t, types.PageLetter, *patch.PageSize)
	assert.Nil(t, patch.FontSize)

	cmd = newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--font", "Comic Sans"}))
	_, err = stylePatch(cmd)
	assert.Error(t, err)
}

func TestParseHeights(t *testing.T) {
	heights, err := parseHeights(" 100, 250.5 ,0")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 250.5, 0}, heights)

	heights, err = parseHeights("")
	require.NoError(t, err)
	assert.Nil(t, heights)

	_, err = parseHeights("100,abc")
	assert.Error(t, err)

	_, err = parseHeights("-5")
	assert.Error(t, err)
}

func TestShiftTarget(t *testing.T) {
	order := types.AllSections()

	assert.Equal(t, types.SectionSummary, shiftTarget(order, types.SectionSkills, -3))
	assert.Equal(t, types.SectionCourses, shiftTarget(order, types.SectionExperience, 10))
	assert.Equal(t, types.SectionSummary, shiftTarget(order, types.SectionSummary, -1))
}
