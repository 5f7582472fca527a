package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "web", cfg.WebDir)
	require.Equal(t, "data", cfg.DataDir)
	require.True(t, cfg.AnonymizeNames)
	require.Equal(t, filepath.Join("data", "bookstore.db"), cfg.DatabasePath())
	require.Equal(t, filepath.Join("data", "snapshots"), cfg.SnapshotDir())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\ndata_dir: /var/lib/bookstore\nanonymize_names: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "/var/lib/bookstore", cfg.DataDir)
	require.False(t, cfg.AnonymizeNames)
	// Unset keys keep their defaults.
	require.Equal(t, "web", cfg.WebDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644))

	t.Setenv("BOOKSTORE_ADDR", ":7070")
	t.Setenv("BOOKSTORE_WEB_DIR", "dist")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Addr)
	require.Equal(t, "dist", cfg.WebDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadNoPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
