package configcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/showcase-cli/internal/config"
)

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg := &config.Config{
		URL:      "https://myproject.supabase.co",
		APIKey:   "abcd-secret-key-wxyz",
		Table:    "portfolio",
		Language: "tr",
	}
	require.NoError(t, cfg.Save(configPath))

	var out bytes.Buffer
	require.NoError(t, runShow(configPath, true, &out))

	assert.Contains(t, out.String(), "https://myproject.supabase.co  (source: config)")
	assert.Contains(t, out.String(), "abcd************wxyz")
	assert.NotContains(t, out.String(), "secret")
	assert.Contains(t, out.String(), "portfolio  (source: config)")
	assert.Contains(t, out.String(), "tr  (source: config)")
	assert.Contains(t, out.String(), "hosted, falling back to local")
	assert.NotContains(t, out.String(), "(file not found)")
}

func TestRunShow_EnvOverride(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{URL: "https://file.supabase.co", APIKey: "file-key"}).Save(configPath))

	t.Setenv("SUPABASE_URL", "https://env.supabase.co")

	var out bytes.Buffer
	require.NoError(t, runShow(configPath, true, &out))
	assert.Contains(t, out.String(), "https://env.supabase.co  (source: SUPABASE_URL)")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "missing", "config.yml")

	var out bytes.Buffer
	require.NoError(t, runShow(configPath, true, &out))

	assert.Contains(t, out.String(), "apps  (source: default)")
	assert.Contains(t, out.String(), "en  (source: default)")
	assert.Contains(t, out.String(), "local only")
	assert.Contains(t, out.String(), "(file not found)")
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "short", want: "*****"},
		{input: "12345678", want: "********"},
		{input: "123456789", want: "1234*6789"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, maskSecret(tt.input))
		})
	}
}
