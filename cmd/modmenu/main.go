// Command modmenu inspects and edits the mod menu option file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/modmenu/internal/adapters/driven/config/file"
	"github.com/custodia-labs/modmenu/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/modmenu/internal/adapters/driving/cli"
	"github.com/custodia-labs/modmenu/internal/appconfig"
	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/ports/driven"
	"github.com/custodia-labs/modmenu/internal/core/services"
	"github.com/custodia-labs/modmenu/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(wire)

	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// wire builds the option services for cfg.
func wire(cfg appconfig.Config) (*cli.Services, error) {
	f, err := file.NewConfigFile(cfg.ConfigDir, cfg.AppID, cfg.Format)
	if err != nil {
		return nil, err
	}

	options := domain.ModMenuOptions()
	store := memory.NewOptionStore()
	persistence := services.NewConfigPersistence(options, store, f,
		driven.CacheInvalidatorFunc(func() {
			logger.Debug("option cache invalidated")
		}))

	return &cli.Services{
		Persistence: persistence,
		Options:     services.NewOptionService(options, store, persistence),
		Watch: func(ctx context.Context) error {
			w, err := file.NewWatcher(f.Path(), file.DefaultDebounce, func() {
				logger.Info("option file changed, reloading")
				persistence.Load()
			})
			if err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}, nil
}
