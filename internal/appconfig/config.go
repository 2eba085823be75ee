// Package appconfig resolves the CLI's own settings: where the option file
// lives and how it is encoded. Values come from flags, then MODMENU_*
// environment variables, then defaults.
package appconfig

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "MODMENU"

// Setting keys. Each doubles as the persistent flag name.
const (
	KeyConfigDir = "config-dir"
	KeyAppID     = "app-id"
	KeyFormat    = "format"
	KeyVerbose   = "verbose"
)

// Defaults for the option file location.
const (
	DefaultAppID  = "modmenu"
	DefaultFormat = "json"
)

// Config is the resolved CLI configuration.
type Config struct {
	// ConfigDir holds the option file. Empty means ~/.modmenu.
	ConfigDir string

	// AppID names the option file.
	AppID string

	// Format is json, toml or yaml.
	Format string

	Verbose bool
}

// New returns a viper instance wired to the MODMENU_* environment.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyConfigDir, "")
	v.SetDefault(KeyAppID, DefaultAppID)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyVerbose, false)
}

// RegisterFlags adds the persistent flags the CLI exposes.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyConfigDir, "", "directory holding the option file (default ~/.modmenu)")
	flags.String(KeyAppID, DefaultAppID, "option file name without extension")
	flags.String(KeyFormat, DefaultFormat, "option file format: json, toml or yaml")
	flags.BoolP(KeyVerbose, "v", false, "enable debug logging")
}

// BindFlags lets explicitly set flags override environment and defaults.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyConfigDir, KeyAppID, KeyFormat, KeyVerbose} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Current reads the resolved configuration from v.
func Current(v *viper.Viper) Config {
	cfg := Config{
		ConfigDir: strings.TrimSpace(v.GetString(KeyConfigDir)),
		AppID:     strings.TrimSpace(v.GetString(KeyAppID)),
		Format:    strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		Verbose:   v.GetBool(KeyVerbose),
	}
	if cfg.AppID == "" {
		cfg.AppID = DefaultAppID
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	return cfg
}
