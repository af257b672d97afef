package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui"
	"github.com/custodia-labs/caption-viewer/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Browse records and open the caption panel to view, switch and edit text
fields. Settings changes on disk are picked up while the UI is running.

Controls:
  ↑/k, ↓/j - Navigate records
  Enter    - Open caption panel
  f        - Next field
  e        - Edit caption
  Ctrl+S   - Save edit
  Esc      - Cancel edit / back
  n, p     - Next / previous record
  y        - Copy raw text
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if recordService == nil || panelRegistry == nil {
		return errors.New("record service not configured")
	}

	ports := &tui.Ports{
		Records:  recordService,
		Panels:   panelRegistry,
		Settings: settingsService,
	}
	if configWatcher != nil {
		ports.Watcher = configWatcher
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	// Log lines would draw over the alternate screen; hold them until exit.
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	defer func() {
		logger.SetOutput(os.Stderr)
		_, _ = os.Stderr.Write(logs.Bytes())
	}()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
