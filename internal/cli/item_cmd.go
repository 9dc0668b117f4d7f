package cli

import (
	"fmt"

	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage work items",
	}

	cmd.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newRemoveCmd(app),
		newMoveCmd(app),
	)

	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var f itemFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a work item in the next free lane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.Title == "" || f.Start == "" {
				if !app.interactive() {
					return fmt.Errorf("--title and --start are required")
				}
				if err := itemForm(&f).Run(); err != nil {
					return err
				}
			}

			w, err := f.toWorkItem()
			if err != nil {
				return err
			}
			if err := app.WorkItems.Create(cmd.Context(), w); err != nil {
				return err
			}

			printf(cmd, "Created %s %s (%s)\n", formatter.Bold(w.Title),
				formatter.DateRange(w.Start, w.End), formatter.TruncID(w.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Title, "title", "", "Work item title")
	cmd.Flags().StringVar(&f.Start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.End, "end", "", "Last day, inclusive (default: start)")
	cmd.Flags().StringVar(&f.Status, "status", "", "todo, in_progress, blocked or done")
	cmd.Flags().StringVar(&f.Color, "color", "", "Bar color as #rrggbb")
	cmd.Flags().StringVar(&f.Progress, "progress", "", "Percent complete (0-100)")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List work items in lane order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.WorkItems.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				printf(cmd, "No work items. Add one with %s or %s.\n",
					formatter.Bold("gantt item add"), formatter.Bold("gantt import"))
				return nil
			}
			printf(cmd, "%s\n", formatter.FormatItemList(items, app.Config.TodayOrNow()))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ITEM",
		Short: "Show work item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItemID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			w, err := app.WorkItems.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", formatter.FormatItemDetail(w, app.Config.TodayOrNow()))
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ITEM",
		Aliases: []string{"remove"},
		Short:   "Delete a work item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItemID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			w, err := app.WorkItems.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := app.WorkItems.Delete(cmd.Context(), id); err != nil {
				return err
			}
			printf(cmd, "Removed %s\n", formatter.Bold(w.Title))
			return nil
		},
	}
}

func newMoveCmd(app *App) *cobra.Command {
	var (
		days       int
		start, end domain.Date
	)

	cmd := &cobra.Command{
		Use:   "move ITEM",
		Short: "Reschedule a work item by a day delta or to explicit dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byDays := cmd.Flags().Changed("days")
			byDates := !start.IsZero() || !end.IsZero()
			if byDays == byDates {
				return fmt.Errorf("use either --days or --start/--end")
			}

			ctx := cmd.Context()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err := app.WorkItems.GetByID(ctx, id)
			if err != nil {
				return err
			}

			newStart, newEnd := w.Start, w.End
			if byDays {
				newStart, newEnd = w.Start.AddDays(days), w.End.AddDays(days)
			} else {
				if !start.IsZero() {
					newStart = start
				}
				if !end.IsZero() {
					newEnd = end
				}
			}

			moved, err := app.WorkItems.Reschedule(ctx, id, newStart, newEnd)
			if err != nil {
				return err
			}
			printf(cmd, "Moved %s to %s\n", formatter.Bold(moved.Title), formatter.DateRange(moved.Start, moved.End))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Shift both dates by this many days (negative moves earlier)")
	cmd.Flags().Var(newDateValue(&start), "start", "New first day")
	cmd.Flags().Var(newDateValue(&end), "end", "New last day")

	return cmd
}
