package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage display settings",
	Long: `View and configure how captions are truncated, which field panels open
with, and the terminal Markdown theme.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsMaxLengthCmd = &cobra.Command{
	Use:   "max-length [n]",
	Short: "Set the truncation length",
	Long: `Set the number of characters kept before a caption is truncated.

Use 0 to disable truncation.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsMaxLength,
}

var settingsMarkerCmd = &cobra.Command{
	Use:   "marker [text]",
	Short: "Set the truncation marker",
	Long: `Set the text appended to truncated captions.

Escape sequences \n and \t are expanded.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsMarker,
}

var settingsDefaultFieldCmd = &cobra.Command{
	Use:   "default-field [field]",
	Short: "Set the field panels open with",
	Long:  `Set the field preselected when a caption panel opens. Use "" to clear it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDefaultField,
}

var settingsStyleCmd = &cobra.Command{
	Use:   "style [style]",
	Short: "Set the terminal Markdown theme",
	Long: `Set the theme used to render Markdown in the terminal.

Available styles:
  auto  - Detect from the terminal background
  dark  - Dark background theme
  light - Light background theme
  notty - Plain text, no colours`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: styleNames(),
	RunE:      runSettingsStyle,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsMaxLengthCmd)
	settingsCmd.AddCommand(settingsMarkerCmd)
	settingsCmd.AddCommand(settingsDefaultFieldCmd)
	settingsCmd.AddCommand(settingsStyleCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Display]")
	if settings.MaxLength > 0 {
		cmd.Printf("  Max length: %d characters\n", settings.MaxLength)
	} else {
		cmd.Println("  Max length: unlimited")
	}
	cmd.Printf("  Truncation marker: %s\n", strconv.Quote(settings.TruncationMarker))
	cmd.Println()

	cmd.Println("[Panel]")
	if settings.DefaultField != "" {
		cmd.Printf("  Default field: %s\n", settings.DefaultField)
	} else {
		cmd.Println("  Default field: (none)")
	}
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  Style: %s\n", settings.Style)
	return nil
}

func runSettingsMaxLength(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: max length must be a number: %q", domain.ErrInvalidInput, args[0])
	}

	if err := settingsService.SetMaxLength(n); err != nil {
		return fmt.Errorf("failed to set max length: %w", err)
	}

	if n == 0 {
		cmd.Println("Truncation disabled")
	} else {
		cmd.Printf("Max length set to %d\n", n)
	}
	return nil
}

func runSettingsMarker(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	marker := expandEscapes(args[0])
	if err := settingsService.SetTruncationMarker(marker); err != nil {
		return fmt.Errorf("failed to set truncation marker: %w", err)
	}

	cmd.Printf("Truncation marker set to %s\n", strconv.Quote(marker))
	return nil
}

func runSettingsDefaultField(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	field := strings.TrimSpace(args[0])
	if field != "" && captionService != nil {
		names, err := captionService.StringFields(cmd.Context())
		if err == nil && len(names) > 0 && !slices.Contains(names, field) {
			cmd.PrintErrf("Warning: %q is not a string field of any imported record\n", field)
		}
	}

	if err := settingsService.SetDefaultField(field); err != nil {
		return fmt.Errorf("failed to set default field: %w", err)
	}

	if field == "" {
		cmd.Println("Default field cleared")
	} else {
		cmd.Printf("Default field set to %s\n", field)
	}
	return nil
}

func runSettingsStyle(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	style := domain.RenderStyle(strings.ToLower(args[0]))
	if err := settingsService.SetStyle(style); err != nil {
		return fmt.Errorf("failed to set style (choose one of %s): %w", strings.Join(styleNames(), ", "), err)
	}

	cmd.Printf("Render style set to %s\n", style)
	return nil
}

func styleNames() []string {
	all := domain.AllRenderStyles()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.String())
	}
	return names
}

// expandEscapes turns the two-character sequences \n and \t into
// newline and tab, so markers can be typed on one shell line.
func expandEscapes(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}
