package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frigo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
database: /data/frigo.db
session_dir: /tmp/my-session
ai:
  project_id: my-project
  location: europe-west1
  credentials_file: /secrets/sa.json
  vision_model: gemini-pro-vision
  recipe_model: gemini-1.5-pro
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/frigo.db", cfg.Database)
	assert.Equal(t, "/tmp/my-session", cfg.SessionDir)
	assert.Equal(t, "my-project", cfg.AI.ProjectID)
	assert.Equal(t, "europe-west1", cfg.AI.Location)
	assert.Equal(t, "gemini-1.5-pro", cfg.AI.RecipeModel)
}

func TestLoad_DefaultsFillGaps(t *testing.T) {
	path := writeConfig(t, `
ai:
  project_id: my-project
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "frigo.db", cfg.Database)
	assert.NotEmpty(t, cfg.SessionDir)
	assert.Equal(t, "us-central1", cfg.AI.Location)
	assert.Equal(t, "gemini-pro-vision", cfg.AI.VisionModel)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.RecipeModel)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, `
databse: typo.db
`)

	_, err := Load(path)
	assert.Error(t, err, "typos should fail loudly")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("FRIGO_CONFIG", "/etc/frigo/frigo.yaml")
	assert.Equal(t, "/etc/frigo/frigo.yaml", Path())

	t.Setenv("FRIGO_CONFIG", "")
	assert.Equal(t, "frigo.yaml", Path())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "frigo.db", cfg.Database)
	assert.Equal(t, "us-central1", cfg.AI.Location)
}
