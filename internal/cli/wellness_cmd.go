package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/insight"
)

func newWellnessCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "wellness",
		Short: "Show stress, balance, and break compliance",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()
			tasks, err := listWindow(app, now)
			if err != nil {
				return err
			}
			snap := insight.BuildWellness(tasks, now)

			if asJSON {
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWellness(snap))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw snapshot as JSON")
	return cmd
}
