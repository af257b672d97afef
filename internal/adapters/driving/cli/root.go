// Package cli provides the cobra command tree for captionview.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/caption-viewer/internal/core/ports/driving"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services used by commands. Set by main via SetServices.
var (
	recordService   driving.RecordService
	captionService  driving.CaptionService
	settingsService driving.SettingsService
	panelRegistry   driving.PanelRegistry
	configWatcher   ConfigWatcher
)

// ConfigWatcher reports changes to the settings file.
type ConfigWatcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}

// Services bundles the driving ports the commands depend on.
type Services struct {
	Records  driving.RecordService
	Caption  driving.CaptionService
	Settings driving.SettingsService
	Panels   driving.PanelRegistry

	// Watcher is optional. When set, the TUI re-renders on config changes.
	Watcher ConfigWatcher
}

// SetServices injects the services used by commands.
func SetServices(s Services) {
	recordService = s.Records
	captionService = s.Caption
	settingsService = s.Settings
	panelRegistry = s.Panels
	configWatcher = s.Watcher
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "captionview",
	Short: "View and edit vision-language model captions",
	Long: `captionview renders free-form text produced by vision-language models.

Captions are sanitised, pretty-printed when they are JSON, have embedded HTML
tables converted to Markdown, and have literal escape sequences resolved.
Records are stored locally and can be browsed in a terminal UI, from the
command line, or by an AI assistant over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command. Commands stop when ctx is cancelled.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
