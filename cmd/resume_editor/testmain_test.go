package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

// repoEnvFile is the .env the built binary reads when run from the repo root.
var repoEnvFile = filepath.Join("..", "..", ".env")

// TestMain exposes GEMINI_API_KEY and DATABASE_URL from the repo .env to the
// CLI tests. Variables already set in the environment win.
func TestMain(m *testing.M) {
	// absent in CI
	_ = godotenv.Load(repoEnvFile)

	os.Exit(m.Run())
}

func TestRepoEnvFile_ResolvesToModuleRoot(t *testing.T) {
	assert.FileExists(t, filepath.Join(filepath.Dir(repoEnvFile), "go.mod"))
	assert.Equal(t, ".env", filepath.Base(repoEnvFile))
}
