package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, "./data/camino.db", cfg.Database.Path)
	require.Equal(t, 30*time.Minute, cfg.Session.InactivityTimeout)
	require.Equal(t, 2*time.Hour, cfg.Session.RecentTTL)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camino.yaml")
	body := []byte("server:\n  address: \":9090\"\nsession:\n  inactivity_timeout: 10m\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Address)
	require.Equal(t, 10*time.Minute, cfg.Session.InactivityTimeout)
	require.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	require.Equal(t, 2*time.Hour, cfg.Session.RecentTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAMINO_SERVER_ADDRESS", ":7070")
	t.Setenv("CAMINO_SESSION_INACTIVITY_TIMEOUT", "5m")
	t.Setenv("CAMINO_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Address)
	require.Equal(t, 5*time.Minute, cfg.Session.InactivityTimeout)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camino.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  address: \":9090\"\n"), 0o600))
	t.Setenv("CAMINO_SERVER_ADDRESS", ":6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":6060", cfg.Server.Address)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_RejectsNonPositiveDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camino.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  inactivity_timeout: 0s\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
