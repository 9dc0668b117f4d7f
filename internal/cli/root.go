package cli

import (
	"fmt"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/config"
	"github.com/alexanderramin/gantt/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	WorkItems service.WorkItemService
	Import    service.ImportService
	Config    config.Config

	// ChartObserver receives drag events from every chart the CLI builds.
	ChartObserver chart.Observer

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// bare-root TUI launch only when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "gantt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "gantt",
		Short:         "Plan work items on an interactive timeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), app, tuiOptions{Zoom: app.Config.Zoom})
		},
	}

	root.AddCommand(
		newItemCmd(app),
		newImportCmd(app),
		newChartCmd(app),
		newRenderCmd(app),
		newServeCmd(app),
		newTUICmd(app),
	)

	return root
}

// printf writes to the command's output so tests can capture it.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
