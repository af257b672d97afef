package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "List registered panels",
	Args:  cobra.NoArgs,
	RunE:  runPanels,
}

func init() {
	rootCmd.AddCommand(panelsCmd)
}

func runPanels(cmd *cobra.Command, _ []string) error {
	if panelRegistry == nil {
		return errors.New("panel registry not configured")
	}

	for _, d := range panelRegistry.Descriptors() {
		cmd.Printf("%s\n", d.Name)
		cmd.Printf("  Label:          %s\n", d.Label)
		cmd.Printf("  Surfaces:       %s\n", strings.Join(d.Surfaces, ", "))
		cmd.Printf("  Allow multiple: %t\n", d.AllowMultiple)
	}
	return nil
}
