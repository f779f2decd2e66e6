package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return NewParser("showroom", "1.0.0", "2026-01-01T00:00:00Z", "abc1234")
}

// ============================================================================
// Command Parsing Tests
// ============================================================================

func TestParseNoArgs(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{})

	require.NoError(t, err)
	assert.True(t, result.ShowHelp)
	assert.Equal(t, CommandNone, result.Command)
}

func TestParseKioskCommand(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"kiosk"})

	require.NoError(t, err)
	assert.Equal(t, CommandKiosk, result.Command)
	assert.False(t, result.ShowHelp)
}

func TestParseServeCommand(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"serve"})

	require.NoError(t, err)
	assert.Equal(t, CommandServe, result.Command)
}

func TestParseCatalogCommand(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"catalog"})

	require.NoError(t, err)
	assert.Equal(t, CommandCatalog, result.Command)
}

func TestParseVersionCommand(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"version"})

	require.NoError(t, err)
	assert.Equal(t, CommandVersion, result.Command)
}

func TestParseHelpCommand(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"help"})

	require.NoError(t, err)
	assert.Equal(t, CommandHelp, result.Command)
	assert.True(t, result.ShowHelp)
}

func TestParseHelpWithCommand(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"help", "kiosk"})

	require.NoError(t, err)
	assert.Equal(t, CommandHelp, result.Command)
	assert.True(t, result.ShowHelp)
	assert.Equal(t, "kiosk", result.HelpCommand)
}

func TestParseUnknownCommand(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse([]string{"unknown"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

// ============================================================================
// Command Alias Tests
// ============================================================================

func TestParseCommandAliases(t *testing.T) {
	tests := []struct {
		alias    string
		expected Command
	}{
		{"k", CommandKiosk},
		{"run", CommandKiosk},
		{"kiosk", CommandKiosk},
		{"s", CommandServe},
		{"gateway", CommandServe},
		{"serve", CommandServe},
		{"c", CommandCatalog},
		{"lineup", CommandCatalog},
		{"catalog", CommandCatalog},
		{"v", CommandVersion},
		{"version", CommandVersion},
		{"h", CommandHelp},
		{"help", CommandHelp},
	}

	for _, tc := range tests {
		t.Run(tc.alias, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseCommand(tc.alias))
		})
	}
}

func TestParseCommandUnknown(t *testing.T) {
	assert.Equal(t, CommandNone, ParseCommand("install"))
	assert.Equal(t, CommandNone, ParseCommand(""))
}

// ============================================================================
// Global Flag Tests
// ============================================================================

func TestParseGlobalFlags(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"--verbose", "--offline", "--log-level", "debug", "kiosk"})

	require.NoError(t, err)
	assert.Equal(t, CommandKiosk, result.Command)
	assert.True(t, result.GlobalFlags.Verbose)
	assert.True(t, result.GlobalFlags.Offline)
	assert.Equal(t, "debug", result.GlobalFlags.LogLevel)
}

func TestParseGlobalFlagShorthands(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"-q", "-c", "/etc/showroom/config.yaml", "serve"})

	require.NoError(t, err)
	assert.True(t, result.GlobalFlags.Quiet)
	assert.Equal(t, "/etc/showroom/config.yaml", result.GlobalFlags.ConfigFile)
}

func TestParseVerboseQuietConflict(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse([]string{"--verbose", "--quiet", "kiosk"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use --verbose and --quiet together")
}

func TestParseHelpFlagShortCircuits(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"kiosk", "--help"})

	require.NoError(t, err)
	assert.True(t, result.ShowHelp)
}

// ============================================================================
// Command Flag Tests
// ============================================================================

func TestParseKioskFlags(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"kiosk", "--gateway", "http://dms.local:9500", "--theme", "crestline-light", "--dealer", "Crestline Chevrolet"})

	require.NoError(t, err)
	assert.Equal(t, "http://dms.local:9500", result.KioskFlags.GatewayURL)
	assert.Equal(t, "crestline-light", result.KioskFlags.Theme)
	assert.Equal(t, "Crestline Chevrolet", result.KioskFlags.DealerName)
}

func TestParseServeFlags(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"serve", "--addr", ":9500"})

	require.NoError(t, err)
	assert.Equal(t, ":9500", result.ServeFlags.Addr)
}

func TestParseCatalogFlags(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"catalog", "--category", "trucks", "--json"})

	require.NoError(t, err)
	assert.Equal(t, "trucks", result.CatalogFlags.Category)
	assert.True(t, result.CatalogFlags.JSON)
}

func TestParseInvalidCommandFlag(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse([]string{"serve", "--bogus"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid serve flags")
}

func TestParsePositionalArgsPreserved(t *testing.T) {
	p := newTestParser()
	result, err := p.Parse([]string{"catalog", "extra"})

	require.NoError(t, err)
	assert.Equal(t, []string{"extra"}, result.Args)
}

// ============================================================================
// Usage and Version Tests
// ============================================================================

func TestUsageListsCommands(t *testing.T) {
	p := newTestParser()
	usage := p.Usage()

	for _, cmd := range Commands() {
		assert.Contains(t, usage, cmd.Name)
	}
	assert.Contains(t, usage, "--offline")
}

func TestCommandUsage(t *testing.T) {
	p := newTestParser()

	usage := p.CommandUsage("kiosk")
	assert.Contains(t, usage, "showroom kiosk")
	assert.Contains(t, usage, "--gateway")

	unknown := p.CommandUsage("bogus")
	assert.Contains(t, unknown, "Unknown command")
}

func TestVersionString(t *testing.T) {
	p := newTestParser()
	v := p.VersionString()

	assert.True(t, strings.HasPrefix(v, "showroom version 1.0.0"))
	assert.Contains(t, v, "Build time: 2026-01-01T00:00:00Z")
	assert.Contains(t, v, "Git commit: abc1234")
}

func TestVersionString_UnknownBuildInfo(t *testing.T) {
	p := NewParser("showroom", "dev", "unknown", "unknown")
	v := p.VersionString()

	assert.Contains(t, v, "showroom version dev")
	assert.NotContains(t, v, "Build time")
	assert.NotContains(t, v, "Git commit")
}

func TestVersionInfo(t *testing.T) {
	p := newTestParser()
	info := p.VersionInfo()

	assert.Equal(t, "1.0.0", info["version"])
	assert.Equal(t, "abc1234", info["gitCommit"])
}

// ============================================================================
// Command Metadata Tests
// ============================================================================

func TestCommandString(t *testing.T) {
	assert.Equal(t, "kiosk", CommandKiosk.String())
	assert.Equal(t, "serve", CommandServe.String())
	assert.Equal(t, "catalog", CommandCatalog.String())
	assert.Equal(t, "", CommandNone.String())
}

func TestCommandIsValid(t *testing.T) {
	assert.False(t, CommandNone.IsValid())
	assert.True(t, CommandKiosk.IsValid())
	assert.True(t, CommandHelp.IsValid())
	assert.False(t, Command(99).IsValid())
}

func TestGetCommandInfo(t *testing.T) {
	info := GetCommandInfo(CommandServe)
	require.NotNil(t, info)
	assert.Equal(t, "serve", info.Name)

	assert.Nil(t, GetCommandInfo(CommandNone))
}

func TestFlagError(t *testing.T) {
	err := &FlagError{Flag: "theme", Message: "unknown theme"}
	assert.Equal(t, "flag error: theme: unknown theme", err.Error())
}
