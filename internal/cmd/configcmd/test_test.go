package configcmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/showcase-cli/internal/config"
)

func testConfig(t *testing.T, serverURL string) *config.Config {
	return &config.Config{
		URL:       serverURL,
		APIKey:    "test-key",
		LocalPath: filepath.Join(t.TempDir(), "catalog.db"),
	}
}

func newTestOptions() (*testOptions, *bytes.Buffer) {
	var out bytes.Buffer
	return &testOptions{noColor: true, stdout: &out}, &out
}

func TestRunTest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	opts, out := newTestOptions()
	require.NoError(t, runTest(context.Background(), opts, testConfig(t, server.URL)))
	assert.Contains(t, out.String(), "Local catalog:")
	assert.Contains(t, out.String(), "(0 apps)")
	assert.Contains(t, out.String(), "Table access verified")
}

func TestRunTest_LocalOnly(t *testing.T) {
	opts, out := newTestOptions()
	cfg := &config.Config{LocalPath: filepath.Join(t.TempDir(), "nested", "catalog.db")}

	require.NoError(t, runTest(context.Background(), opts, cfg))
	assert.Contains(t, out.String(), "No hosted catalog configured")
}

func TestRunTest_Failures(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		errContain string
	}{
		{name: "auth failure", statusCode: http.StatusUnauthorized, errContain: "authentication failed"},
		{name: "forbidden", statusCode: http.StatusForbidden, errContain: "access denied"},
		{name: "missing table", statusCode: http.StatusNotFound, errContain: "not found"},
		{name: "server error", statusCode: http.StatusInternalServerError, errContain: "unexpected status code: 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			opts, out := newTestOptions()
			err := runTest(context.Background(), opts, testConfig(t, server.URL))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "connection failed")
			assert.Contains(t, err.Error(), tt.errContain)
			assert.Contains(t, out.String(), "Reconfigure with: showcase init")
		})
	}
}

func TestRunTest_InvalidConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{URL: "https://myproject.supabase.co"}).Save(configPath))

	opts, _ := newTestOptions()
	opts.configPath = configPath

	err := runTest(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key is required")
	assert.Contains(t, err.Error(), "showcase init")
}
