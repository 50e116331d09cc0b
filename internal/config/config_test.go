package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUSPENSEACTION_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "loading...", cfg.UI.Fallback)
	require.Equal(t, 600*time.Millisecond, cfg.UI.Delay)
	require.Equal(t, 1, cfg.UI.InitialID)
	require.False(t, cfg.UI.CancelOnSupersede)
	require.True(t, cfg.Database.Seed)
	require.Equal(t, "suspenseaction.db", filepath.Base(cfg.Database.Path))
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
fallback = "fetching..."
delay = "2s"
cancel_on_supersede = true
`), 0o644))
	t.Setenv("SUSPENSEACTION_CONFIG", path)
	t.Setenv("SUSPENSEACTION_UI_INITIAL_ID", "2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "fetching...", cfg.UI.Fallback)
	require.Equal(t, 2*time.Second, cfg.UI.Delay)
	require.True(t, cfg.UI.CancelOnSupersede)
	require.Equal(t, 2, cfg.UI.InitialID)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nfallback ="), 0o644))
	t.Setenv("SUSPENSEACTION_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("SUSPENSEACTION_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.Fallback = "hold on"
	cfg.UI.Delay = 50 * time.Millisecond
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "hold on", got.UI.Fallback)
	require.Equal(t, 50*time.Millisecond, got.UI.Delay)
}
