// Package cli implements the modmenu command line on top of cobra.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/modmenu/internal/appconfig"
	"github.com/custodia-labs/modmenu/internal/core/ports/driving"
	"github.com/custodia-labs/modmenu/internal/logger"
)

// version is overridden at build time with -ldflags.
var version = "dev"

// annotationNoServices marks commands that run without the option services.
const annotationNoServices = "modmenu/no-services"

// Services holds the ports the commands drive.
type Services struct {
	Persistence driving.ConfigPersistence
	Options     driving.OptionService

	// Watch reloads the option file whenever it changes until ctx is done.
	Watch func(ctx context.Context) error
}

// Bootstrap builds the services for a resolved configuration.
type Bootstrap func(cfg appconfig.Config) (*Services, error)

var (
	settings  = appconfig.New()
	bootstrap Bootstrap
	services  *Services
)

var rootCmd = &cobra.Command{
	Use:   "modmenu",
	Short: "Manage mod menu options",
	Long: `modmenu keeps the mod menu's options in a single file and lets you
inspect and change them from the command line or an interactive editor.

The option file lives at <config-dir>/<app-id>.<format>, by default
~/.modmenu/modmenu.json. Every flag can also be set through the matching
MODMENU_* environment variable.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	appconfig.RegisterFlags(rootCmd.PersistentFlags())
}

// SetBootstrap sets the function that wires the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := appconfig.BindFlags(settings, cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	cfg := appconfig.Current(settings)
	logger.SetVerbose(cfg.Verbose)
	logger.Debug("config dir=%q app id=%q format=%q", cfg.ConfigDir, cfg.AppID, cfg.Format)

	services = nil
	if cmd.Annotations[annotationNoServices] == "true" || cmd.Name() == "help" {
		return nil
	}
	if bootstrap == nil {
		return errors.New("services not configured")
	}

	s, err := bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	services = s
	return nil
}

func requireServices() (*Services, error) {
	if services == nil || services.Persistence == nil || services.Options == nil {
		return nil, errors.New("option services not configured")
	}
	return services, nil
}

// initialize creates or loads the option file. A file that cannot be read
// leaves defaults in place; the failure is already logged.
func initialize() (*Services, error) {
	s, err := requireServices()
	if err != nil {
		return nil, err
	}
	s.Persistence.Initialize()
	return s, nil
}
