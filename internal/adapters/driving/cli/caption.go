package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/caption-viewer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/caption-viewer/internal/core/domain"
)

// defaultTermWidth is used when the terminal size is unknown.
const defaultTermWidth = 80

var (
	captionField    string
	captionRaw      bool
	captionMarkdown bool
	captionValue    string
	captionFile     string
)

var captionCmd = &cobra.Command{
	Use:   "caption",
	Short: "Show or edit a record's caption",
	Long:  `Render a text field of a record through the display pipeline, or replace its value.`,
}

var captionShowCmd = &cobra.Command{
	Use:   "show [record-id]",
	Short: "Render a caption",
	Long: `Render a text field of a record.

Output is styled for the terminal when stdout is a TTY and plain Markdown
otherwise. Use --markdown to always print Markdown, or --raw to print the
stored value untouched. Without --field the configured default field is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runCaptionShow,
}

var captionSetCmd = &cobra.Command{
	Use:   "set [record-id]",
	Short: "Replace a caption",
	Long: `Replace a string field of a record.

The new value comes from --value, or from --file (use "-" for stdin).`,
	Args: cobra.ExactArgs(1),
	RunE: runCaptionSet,
}

func init() {
	captionShowCmd.Flags().StringVarP(&captionField, "field", "f", "", "Field to render")
	captionShowCmd.Flags().BoolVar(&captionRaw, "raw", false, "Print the stored value")
	captionShowCmd.Flags().BoolVar(&captionMarkdown, "markdown", false, "Print Markdown instead of styled output")
	captionShowCmd.MarkFlagsMutuallyExclusive("raw", "markdown")

	captionSetCmd.Flags().StringVarP(&captionField, "field", "f", "", "Field to replace")
	captionSetCmd.Flags().StringVar(&captionValue, "value", "", "New value")
	captionSetCmd.Flags().StringVar(&captionFile, "file", "", "Read the new value from a file (- for stdin)")
	captionSetCmd.MarkFlagsMutuallyExclusive("value", "file")
	captionSetCmd.MarkFlagsOneRequired("value", "file")

	captionCmd.AddCommand(captionShowCmd)
	captionCmd.AddCommand(captionSetCmd)
	rootCmd.AddCommand(captionCmd)
}

func runCaptionShow(cmd *cobra.Command, args []string) error {
	if captionService == nil {
		return errors.New("caption service not configured")
	}

	field, err := resolveField(captionField)
	if err != nil {
		return err
	}

	view, err := captionService.Render(cmd.Context(), args[0], field)
	if err != nil {
		return fmt.Errorf("failed to render caption: %w", err)
	}

	if !view.Present {
		cmd.PrintErrf("Record %s has no text in field %q\n", view.RecordID, view.Field)
		return nil
	}

	out := cmd.OutOrStdout()
	switch {
	case captionRaw:
		fmt.Fprintln(out, view.Raw)
	case captionMarkdown:
		fmt.Fprintln(out, view.Markdown)
	default:
		fmt.Fprintln(out, renderForTerminal(out, view.Markdown))
	}
	return nil
}

func runCaptionSet(cmd *cobra.Command, args []string) error {
	if captionService == nil {
		return errors.New("caption service not configured")
	}
	if captionField == "" {
		return errors.New("--field is required")
	}

	value := captionValue
	if captionFile != "" {
		data, err := readInput(cmd, captionFile)
		if err != nil {
			return err
		}
		value = string(data)
	}

	if err := captionService.Update(cmd.Context(), args[0], captionField, value); err != nil {
		return fmt.Errorf("failed to update caption: %w", err)
	}

	cmd.Printf("Updated %s of %s (%d characters)\n", captionField, args[0], len([]rune(value)))
	return nil
}

// resolveField falls back to the configured default field.
func resolveField(field string) (string, error) {
	if field != "" {
		return field, nil
	}
	if settingsService != nil {
		s, err := settingsService.Get()
		if err == nil && s.DefaultField != "" {
			return s.DefaultField, nil
		}
	}
	return "", errors.New("no field given: use --field or set one with 'captionview settings default-field'")
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// renderForTerminal styles markdown with glamour when w is a terminal.
func renderForTerminal(w io.Writer, md string) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return md
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = defaultTermWidth
	}

	style := domain.RenderStyleAuto
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			style = s.Style
		}
	}

	out, err := styles.RenderMarkdown(md, style, width-2)
	if err != nil {
		return md
	}
	return out
}
