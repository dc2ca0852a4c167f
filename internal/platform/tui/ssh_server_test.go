package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	assert.Equal(t, ":23234", cfg.Address)
	assert.Equal(t, 60, cfg.TickRate)
	assert.NoError(t, cfg.Game.Validate())
}

func TestSSHServerSessionOptions(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.TickRate = 30
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	defer srv.Shutdown()

	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	require.NotNil(t, srv.store)

	opts := srv.sessionOptions("bob", 120, 40)
	assert.Equal(t, "bob", opts.Player)
	assert.Equal(t, 120, opts.Runtime.ScreenW)
	assert.Equal(t, 40, opts.Runtime.ScreenH)
	assert.Equal(t, 30, opts.Runtime.TickRate)
	assert.NotZero(t, opts.Runtime.Seed)
	assert.Same(t, srv.store, opts.Store)
	assert.Empty(t, opts.ScreenshotDir, "remote sessions never write screenshots")

	m, err := NewModel(opts)
	require.NoError(t, err)
	assert.Equal(t, "bob", m.opts.Player)
}
