package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var formatMarkdown bool

// ErrInteractiveInput is returned when format would block on a terminal.
var ErrInteractiveInput = errors.New("format reads text from stdin; pipe or redirect input")

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format text from stdin",
	Long: `Run text from stdin through the display pipeline and print the result.

The text is sanitised and truncated, pretty-printed if it is JSON, has HTML
tables converted to Markdown and literal escape sequences resolved.
Use --markdown to also apply Markdown hard line breaks.

Example:
  cat output.txt | captionview format --markdown`,
	Args: cobra.NoArgs,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatMarkdown, "markdown", "m", false, "Apply Markdown hard line breaks")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, _ []string) error {
	if captionService == nil {
		return errors.New("caption service not configured")
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ErrInteractiveInput
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	out := captionService.Format(string(data))
	if out.IsEmpty() {
		return nil
	}

	text := out.String()
	if formatMarkdown {
		text = captionService.Markdown(out)
	}
	// Written to stdout so the result can be piped.
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
