package cli

import (
	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Append work items from a YAML or JSON file",
		Long: `Append work items from a YAML or JSON file. Every item is validated
before anything is written; a file with any invalid item imports nothing.

  items:
    - title: Design
      start: 2025-09-01
      end: 2025-09-05
      status: in_progress
      color: "#83a598"
      progress: 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printf(cmd, "Imported %d work item(s)\n", len(result.Items))
			for _, w := range result.Items {
				printf(cmd, "  %s  %s  %s\n", formatter.TruncID(w.ID), formatter.Bold(w.Title), formatter.DateRange(w.Start, w.End))
			}
			return nil
		},
	}
}
