package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"server_endpoint_addr":"http://host:9191","notification_ttl":"9s"}`,
	), 0o600))

	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"cmd", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://host:9191", cfg.ServerEndpointAddr)
	assert.Equal(t, 9*time.Second, cfg.NotificationTTL)
}

func TestParseJSON_NoFileFlagLeavesDefaults(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerEndpointAddr)
}

func TestParseJSON_PartialFileKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"server_endpoint_addr":"http://host:9191"}`,
	), 0o600))

	orig := os.Args
	defer func() { os.Args = orig }()
	os.Args = []string{"cmd", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://host:9191", cfg.ServerEndpointAddr)
	assert.Equal(t, 6*time.Second, cfg.NotificationTTL)
}
