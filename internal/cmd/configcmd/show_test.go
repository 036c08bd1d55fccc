package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/adorn/internal/config"
)

func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, cfg.Save(path))
	return path
}

func TestRunShow(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("ADORN_NO_COLOR", "")

	path := writeConfig(t, &config.Config{
		Positional: []string{"bold+red", "underline"},
		Always:     map[string]string{"error": "red"},
	})

	var buf bytes.Buffer
	require.NoError(t, runShow(path, true, &buf))

	output := buf.String()
	assert.Contains(t, output, "Positional")
	assert.Contains(t, output, "bold+red, underline")
	assert.Contains(t, output, "error=red")
	assert.Contains(t, output, "No color")
	assert.Contains(t, output, "false")
	assert.Contains(t, output, path)
}

func TestRunShow_MissingFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("ADORN_NO_COLOR", "")

	path := filepath.Join(t.TempDir(), "config.yml")

	var buf bytes.Buffer
	require.NoError(t, runShow(path, true, &buf))

	output := buf.String()
	assert.Contains(t, output, "(file not found)")
	assert.Contains(t, output, "-")
}

func TestRunShow_EnvOverride(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("ADORN_NO_COLOR", "")

	path := writeConfig(t, &config.Config{Positional: []string{"bold"}})

	var buf bytes.Buffer
	require.NoError(t, runShow(path, true, &buf))

	output := buf.String()
	assert.Contains(t, output, "true")
	assert.Contains(t, output, "(from environment)")
}
