package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/minibank/internal/config"
)

func TestLoadConfig_DefaultWhenMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_ReadsWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	want := config.Default()
	want.Currency = "EUR"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), want))

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_MalformedErrorNamesPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("accounts: [\n"), 0o644))

	_, err := loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading "+config.FileName+": parsing config")

	explicit := filepath.Join(dir, config.FileName)
	_, err = loadConfig(explicit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading "+explicit+": parsing config")
}

func TestLoadConfig_ExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
