package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsdlc/blogimages/pkg/errors"
)

var configVars = []string{
	"GEMINI_API_KEY", "GEMINI_MODEL",
	"BLOGIMAGES_RESOLUTION", "BLOGIMAGES_ASPECT_RATIO", "BLOGIMAGES_STYLE",
	"BLOGIMAGES_DIAGRAM_DIR", "BLOGIMAGES_CATALOG", "LOG_LEVEL",
}

// clearEnv unsets every variable Config reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), ".env")

	cfg, err := load(missing, "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, "blogimages.toml", `
model = "file-model"
resolution = "4K"
diagram_dir = "out/diagrams"
`)
	t.Setenv("BLOGIMAGES_RESOLUTION", "1K")

	cfg, err := load(filepath.Join(t.TempDir(), ".env"), file)
	require.NoError(t, err)

	assert.Equal(t, "file-model", cfg.Model)
	assert.Equal(t, "1K", cfg.Resolution, "environment should beat the file")
	assert.Equal(t, "out/diagrams", cfg.DiagramDir)
	assert.Equal(t, "16:9", cfg.AspectRatio, "unset values keep their default")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dotenv := writeFile(t, ".env", "GEMINI_API_KEY=from-dotenv\nGEMINI_MODEL=dotenv-model\n")
	t.Cleanup(func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("GEMINI_MODEL")
	})

	cfg, err := load(dotenv, "")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.APIKey)
	assert.Equal(t, "dotenv-model", cfg.Model)
}

func TestLoadDotEnvDoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "from-env")
	dotenv := writeFile(t, ".env", "GEMINI_API_KEY=from-dotenv\n")

	cfg, err := load(dotenv, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	noDotEnv := filepath.Join(t.TempDir(), ".env")

	_, err := load(noDotEnv, filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = load(noDotEnv, writeFile(t, "bad.toml", "model = "))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = load(noDotEnv, writeFile(t, "unknown.toml", `colour = "red"`))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestAPIKeyNotReadFromFile(t *testing.T) {
	clearEnv(t)
	file := writeFile(t, "c.toml", `APIKey = "leaked"`)

	_, err := load(filepath.Join(t.TempDir(), ".env"), file)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
