package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/insight"
	"github.com/alexanderramin/pulse/internal/timeutil"
)

func newActivityCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the 14-day activity heat-map",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()
			tasks, err := listWindow(app, now)
			if err != nil {
				return err
			}
			snap := insight.BuildActivity(tasks, now)

			if asJSON {
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivity(snap))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw snapshot as JSON")
	return cmd
}

// listWindow fetches the trailing analysis window ending today.
func listWindow(app *App, now time.Time) ([]domain.Task, error) {
	today := timeutil.Midnight(now)
	from := today.AddDate(0, 0, -(insight.WindowDays - 1))
	tasks, err := app.Tasks.ListInRange(context.Background(), from, today)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}
