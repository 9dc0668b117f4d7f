package cli

import (
	"github.com/alexanderramin/gantt/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve work items and chart images over HTTP",
		Long: `Start an HTTP server until interrupted.

  GET   /api/items        list work items
  GET   /api/items/:id    show one work item
  PATCH /api/items/:id    reschedule: {"days":N} or {"start":"YYYY-MM-DD","end":"YYYY-MM-DD"}
  GET   /chart.svg        render the timeline (?zoom=&anchor=&title=&labels=)
  GET   /chart.png        same, rasterized`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := server.Options{
				Config:        app.Config,
				ChartObserver: app.ChartObserver,
			}
			if app.Config.LogEvents {
				opts.AccessLog = cmd.ErrOrStderr()
			}

			printf(cmd, "Serving on http://%s\n", addr)
			return server.NewServer(app.WorkItems, opts).Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")

	return cmd
}
