package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type tuiOptions struct {
	Zoom   domain.ZoomLevel
	Anchor domain.Date
	Watch  bool

	// Changes and WatchErrors are set by runTUI when Watch is on.
	Changes     <-chan watcher.Change
	WatchErrors <-chan error
}

func newTUICmd(app *App) *cobra.Command {
	var opts tuiOptions

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive chart; drag bars to reschedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app, opts)
		},
	}

	addZoomFlag(cmd.Flags(), &opts.Zoom, app.Config.Zoom)
	addAnchorFlag(cmd.Flags(), &opts.Anchor)
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload when another process writes the database")

	return cmd
}

func runTUI(ctx context.Context, app *App, opts tuiOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Watch {
		if app.Config.DBPath == "" || app.Config.DBPath == ":memory:" {
			return fmt.Errorf("--watch needs a database file")
		}
		w, err := watcher.New(ctx, app.Config.DBPath)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Changes = w.Changes()
		opts.WatchErrors = w.Errors()
	}

	p := tea.NewProgram(newChartModel(app, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
