// Command captionview views and edits vision-language model captions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/cli"
	"github.com/custodia-labs/caption-viewer/internal/core/services"
	"github.com/custodia-labs/caption-viewer/internal/normalisers/vlm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := file.HomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore(filepath.Join(home, "data"))
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer store.Close()

	records := store.RecordStore()
	settings := services.NewSettingsService(configStore)

	cli.SetServices(cli.Services{
		Records:  services.NewRecordService(records),
		Caption:  services.NewCaptionService(records, settings, vlm.Factory),
		Settings: settings,
		Panels:   services.NewPanelRegistry(records, settings, vlm.Factory),
		Watcher:  configStore,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx)
}
