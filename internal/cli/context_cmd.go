package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/intelligence"
)

func newContextCmd(app *App) *cobra.Command {
	var refresh bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Show the current smart context",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := app.Context.Generate(context.Background(), intelligence.GenerateOptions{
				ForceRefresh: refresh,
			})
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(sc, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatContext(sc, app.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Bypass the cache and regenerate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw context as JSON")

	return cmd
}
