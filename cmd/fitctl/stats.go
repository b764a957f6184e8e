package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/views"
)

var statsWindow string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		window, err := stats.ParseWindow(statsWindow)
		if err != nil {
			return err
		}

		state, closeState, err := openState(cmd.Context())
		if err != nil {
			return err
		}
		defer closeState()

		return writeDashboard(cmd.OutOrStdout(), state, window)
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsWindow, "window", "w", "all", "time window: 7d, 30d, 90d or all")
}

func writeDashboard(w io.Writer, state *app.State, window stats.Window) error {
	dashboard := views.BuildDashboard(state.Snapshot(), window, state.Today())
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dashboard)
}
