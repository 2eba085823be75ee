package appconfig

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestCurrent_Defaults(t *testing.T) {
	v := New()
	require.NoError(t, BindFlags(v, newFlags(t)))

	cfg := Current(v)

	assert.Equal(t, Config{AppID: "modmenu", Format: "json"}, cfg)
}

func TestCurrent_Environment(t *testing.T) {
	t.Setenv("MODMENU_CONFIG_DIR", "/srv/modmenu")
	t.Setenv("MODMENU_APP_ID", "client")
	t.Setenv("MODMENU_FORMAT", "TOML")
	t.Setenv("MODMENU_VERBOSE", "true")

	v := New()
	require.NoError(t, BindFlags(v, newFlags(t)))

	cfg := Current(v)

	assert.Equal(t, "/srv/modmenu", cfg.ConfigDir)
	assert.Equal(t, "client", cfg.AppID)
	assert.Equal(t, "toml", cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestCurrent_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MODMENU_FORMAT", "toml")
	t.Setenv("MODMENU_APP_ID", "client")

	v := New()
	require.NoError(t, BindFlags(v, newFlags(t, "--format", "yaml", "-v", "--config-dir", "/tmp/x")))

	cfg := Current(v)

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "client", cfg.AppID, "unset flags leave the environment in charge")
	assert.Equal(t, "/tmp/x", cfg.ConfigDir)
	assert.True(t, cfg.Verbose)
}

func TestCurrent_BlankValuesFallBack(t *testing.T) {
	v := New()
	require.NoError(t, BindFlags(v, newFlags(t, "--app-id", " ", "--format", "")))

	cfg := Current(v)

	assert.Equal(t, DefaultAppID, cfg.AppID)
	assert.Equal(t, DefaultFormat, cfg.Format)
}

func TestBindFlags_MissingFlagsIgnored(t *testing.T) {
	v := New()

	assert.NoError(t, BindFlags(v, pflag.NewFlagSet("empty", pflag.ContinueOnError)))
	assert.Equal(t, "modmenu", Current(v).AppID)
}
