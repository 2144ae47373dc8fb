package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "piiscan.yml")
	content := "allowlist: custom-allowlist.yml\nthreads: 4\nfail_on: high\nno_color: true\nmax_bytes: 2048\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))

	cfg, err := LoadFile(p)
	require.NoError(t, err)

	require.NotNil(t, cfg.Allowlist)
	assert.Equal(t, "custom-allowlist.yml", *cfg.Allowlist)
	require.NotNil(t, cfg.Threads)
	assert.Equal(t, 4, *cfg.Threads)
	require.NotNil(t, cfg.FailOn)
	assert.Equal(t, "high", *cfg.FailOn)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
	require.NotNil(t, cfg.MaxBytes)
	assert.Equal(t, int64(2048), *cfg.MaxBytes)

	// Unset keys stay nil so callers can tell "absent" from zero.
	assert.Nil(t, cfg.Output)
	assert.Nil(t, cfg.NoAudit)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)

	p := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(p, []byte("threads: [nope\n"), 0644))
	_, err = LoadFile(p)
	assert.Error(t, err)
}

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".piiscan.yml"), []byte("fail_on: medium\n"), 0644))

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.FailOn)
	assert.Equal(t, "medium", *cfg.FailOn)
}

func TestLoadLocalMissing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}

func TestLoadGlobal(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "piiscan"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "piiscan", "config.yml"), []byte("threads: 2\n"), 0644))

	cfg, err := LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.Threads)
	assert.Equal(t, 2, *cfg.Threads)
}
