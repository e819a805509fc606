package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""))
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.Equal(t, 1600, cfg.Editor.ContentLimit)
	require.True(t, cfg.StdoutOutput())
}

func TestLoad_Precedence(t *testing.T) {
	file := write(t, "tmplvars.yaml", `
editor:
  max_suggestions: 5
  popup_max_width: 30
output:
  path: from-yaml.json
log:
  level: debug
`)
	envFile := write(t, ".env", "TMPLVARS_MAX_SUGGESTIONS=6\nTMPLVARS_OUTPUT=from-dotenv.json\n")

	cfg, err := Load(
		WithFile(file),
		WithEnvFile(envFile),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"TMPLVARS_OUTPUT": "from-map.json"}),
	)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Editor.MaxSuggestions)
	require.Equal(t, 30, cfg.Editor.PopupMaxWidth)
	require.Equal(t, "from-map.json", cfg.Output.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.StdoutOutput())
}

func TestLoad_SystemEnvOverridesDotEnv(t *testing.T) {
	envFile := write(t, ".env", "LOG_LEVEL=debug\n")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load(WithEnvFile(envFile))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	require.NoError(t, err)
}

func TestLoad_UnknownYAMLFieldFails(t *testing.T) {
	file := write(t, "tmplvars.yaml", "editor:\n  max_suggestion: 5\n")

	_, err := Load(WithFile(file), WithoutSystemEnv(), WithEnvFile(""))
	require.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(WithFile(filepath.Join(t.TempDir(), "missing.yaml")), WithoutSystemEnv())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"TMPLVARS_MAX_SUGGESTIONS": "0",
		"TMPLVARS_CONTENT_LIMIT":   "-1",
	}))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"editor.max_suggestions", "editor.content_limit"}, verr.Fields())
}

func TestLoad_UnparsableIntKeepsFallback(t *testing.T) {
	cfg, err := Load(WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(map[string]string{
		"TMPLVARS_POPUP_MAX_WIDTH": "wide",
	}))
	require.NoError(t, err)
	require.Equal(t, defaultPopupMaxWidth, cfg.Editor.PopupMaxWidth)
}
