package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// previewWidth bounds field values printed by "records show".
const previewWidth = 72

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage stored records",
	Long:  `List, show, import or delete the records whose text fields are displayed.`,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records",
	Args:  cobra.NoArgs,
	RunE:  runRecordsList,
}

var recordsShowCmd = &cobra.Command{
	Use:   "show [record-id]",
	Short: "Show a record's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsShow,
}

var recordsImportCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Import records from a JSON Lines file",
	Long: `Import records from a JSON Lines file, one object per line.

An "id" key is used as the record ID; records without one get a generated
UUID. Field types are inferred from the first non-null value seen.
Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordsImport,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete [record-id]",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsDelete,
}

func init() {
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsShowCmd)
	recordsCmd.AddCommand(recordsImportCmd)
	recordsCmd.AddCommand(recordsDeleteCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	recs, err := recordService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(recs) == 0 {
		cmd.Println("No records. Import some with: captionview records import <file>")
		return nil
	}

	for i := range recs {
		cmd.Printf("  %s  (%d fields)\n", recs[i].ID, len(recs[i].Fields))
	}
	cmd.Printf("\nTotal: %d records\n", len(recs))
	return nil
}

func runRecordsShow(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	rec, err := recordService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	cmd.Printf("Record: %s\n\n", rec.ID)
	if !rec.CreatedAt.IsZero() {
		cmd.Printf("  Created:  %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Printf("  Updated:  %s\n\n", rec.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	names := make([]string, 0, len(rec.Fields))
	for name := range rec.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		value, ok := rec.GetField(name)
		if !ok {
			cmd.Printf("  %s: (null)\n", name)
			continue
		}
		first, _, multi := strings.Cut(value, "\n")
		if multi {
			first += " ⏎"
		}
		cmd.Printf("  %s: %s\n", name, runewidth.Truncate(first, previewWidth, "..."))
	}
	return nil
}

func runRecordsImport(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	var r io.Reader
	if args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	n, err := recordService.Import(cmd.Context(), r)
	if err != nil {
		return fmt.Errorf("import stopped after %d records: %w", n, err)
	}

	cmd.Printf("Imported %d records\n", n)
	return nil
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	if err := recordService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	cmd.Printf("Deleted record: %s\n", args[0])
	return nil
}
