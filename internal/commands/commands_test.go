package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/minibank/internal/commands"
	"github.com/cleared-dev/minibank/internal/config"
)

func runMinibank(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runMinibank(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, config.FileName)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "bank")
	_, _, err := runMinibank(t, "init", dir, "--currency", "EUR")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("currency: GBP\n"), 0o644))

	_, _, err := runMinibank(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "currency: GBP\n", string(data))

	_, _, err = runMinibank(t, "init", dir, "--force")
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Accounts, 2)
}

func TestInit_RejectsBadCurrency(t *testing.T) {
	_, _, err := runMinibank(t, "init", t.TempDir(), "--currency", "dollars")
	require.Error(t, err)
}

func TestDemo_Default(t *testing.T) {
	out, errOut, err := runMinibank(t, "demo")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Your current balance : 1000", lines[0])
	assert.Equal(t, "Your current balance : 990", lines[1])
	assert.Equal(t, `"Account holder 1 has a balance $990"`, lines[2])
	assert.Equal(t, "Total balance for all accounts in our bank is $990", lines[7])
}

func TestDemo_LedgerErrorExitsCleanly(t *testing.T) {
	cfg := config.Default()
	cfg.Scenario.Deposit = "-5"

	out, errOut, err := runMinibank(t, "demo", "--config", writeConfig(t, cfg))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Error: Cannot deposit a negative amount\n", errOut)
}

func TestDemo_MissingConfig(t *testing.T) {
	_, _, err := runMinibank(t, "demo", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemo_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Scenario.Withdraw = "10.5"

	_, _, err := runMinibank(t, "demo", "--config", writeConfig(t, cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fractional")
}

func TestDemo_Verbose(t *testing.T) {
	_, errOut, err := runMinibank(t, "demo", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, "deposit applied")
	assert.Contains(t, errOut, "withdraw applied")
}

func TestReport_Text(t *testing.T) {
	cfg := config.Default()
	cfg.Currency = ""

	out, _, err := runMinibank(t, "report", "--config", writeConfig(t, cfg))
	require.NoError(t, err)
	assert.Equal(t, "Account holder 1 has a balance $990\n"+
		"Account holder 2 has a balance $0\n"+
		"Total: $990\n", out)
}

func TestReport_CSVWithConfigCurrency(t *testing.T) {
	out, _, err := runMinibank(t, "report", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "account_id,holder,balance,display\n"+
		"1,Account holder 1,990,$9.90\n"+
		"2,Account holder 2,0,$0.00\n", out)
}

func TestReport_CurrencyFlagDisables(t *testing.T) {
	out, _, err := runMinibank(t, "report", "--format", "csv", "--currency", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "account_id,holder,balance\n"))
}

func TestReport_RejectsBadCurrencyFlag(t *testing.T) {
	out, _, err := runMinibank(t, "report", "--currency", "dollars")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3-letter ISO code")
	assert.Empty(t, out)
}

func TestReport_CurrencyFlagOverridesConfig(t *testing.T) {
	out, _, err := runMinibank(t, "report", "--format", "csv", "--currency", "usd")
	require.NoError(t, err)
	assert.Contains(t, out, "1,Account holder 1,990,$9.90\n")
}

func TestReport_Markdown(t *testing.T) {
	out, _, err := runMinibank(t, "report", "--format", "markdown", "--currency", "")
	require.NoError(t, err)
	assert.Contains(t, out, "| 1 | Account holder 1 | 990 |")
	assert.Contains(t, out, "| **Total** |  | 990 |")
}

func TestReport_UnknownFormat(t *testing.T) {
	_, _, err := runMinibank(t, "report", "--format", "xml")
	require.Error(t, err)
}

func TestReport_LedgerError(t *testing.T) {
	cfg := config.Default()
	cfg.Scenario.Withdraw = "5000"

	out, errOut, err := runMinibank(t, "report", "--config", writeConfig(t, cfg))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Error: Insufficient funds\n", errOut)
}

func TestVersion(t *testing.T) {
	out, _, err := runMinibank(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none, built: unknown)")
}
