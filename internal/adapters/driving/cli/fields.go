package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fieldsAll bool

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List record fields",
	Long: `List the fields declared by imported records.

By default only string fields are listed, since only those can be shown in
the caption panel. Use --all to include every field with its type.`,
	Args: cobra.NoArgs,
	RunE: runFields,
}

func init() {
	fieldsCmd.Flags().BoolVarP(&fieldsAll, "all", "a", false, "Include non-string fields")
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, _ []string) error {
	if captionService == nil {
		return errors.New("caption service not configured")
	}

	ctx := cmd.Context()

	if !fieldsAll {
		names, err := captionService.StringFields(ctx)
		if err != nil {
			return fmt.Errorf("failed to list fields: %w", err)
		}
		if len(names) == 0 {
			cmd.Println("No string fields.")
			return nil
		}
		for _, name := range names {
			cmd.Println(name)
		}
		return nil
	}

	schema, err := captionService.Fields(ctx)
	if err != nil {
		return fmt.Errorf("failed to list fields: %w", err)
	}
	if len(schema) == 0 {
		cmd.Println("No fields.")
		return nil
	}
	for _, f := range schema {
		cmd.Printf("%-24s %s\n", f.Name, f.Type)
	}
	return nil
}
