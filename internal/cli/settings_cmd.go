package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/settings"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change engine settings",
	}

	cmd.AddCommand(newSettingsGetCmd(app), newSettingsSetCmd(app))
	return cmd
}

func newSettingsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Settings.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", formatter.Bold("ai enabled:"), s.AIEnabled)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Bold("cache ttl: "), s.CacheTTL)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var ai bool
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings; the context cache picks up changes immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			next := app.Settings.Get()
			if cmd.Flags().Changed("ai") {
				next.AIEnabled = ai
			}
			if cmd.Flags().Changed("cache-ttl") {
				next.CacheTTL = ttl
			}

			if err := app.Settings.Set(context.Background(), next); err != nil {
				return fmt.Errorf("saving settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&ai, "ai", false, "Enable the AI strategy")
	cmd.Flags().DurationVar(&ttl, "cache-ttl", settings.DefaultCacheTTL, "Context cache validity window")

	return cmd
}
