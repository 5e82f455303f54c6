package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8080", cfg.ServerEndpointAddr)
}

func TestParseFlags_Override(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"test", "-a", "https://memorizer.example.com"}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "https://memorizer.example.com", cfg.ServerEndpointAddr)
}

func TestParseJson_LoadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	body := `{"server_endpoint_addr": "http://api.internal:8081"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	os.Args = []string{"test", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://api.internal:8081", cfg.ServerEndpointAddr)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"test"}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:8080", cfg.ServerEndpointAddr)
}
