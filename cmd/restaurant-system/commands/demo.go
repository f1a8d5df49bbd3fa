package commands

import (
	"github.com/spf13/cobra"

	"restaurant-system/internal/app"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample order through the restaurant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := app.New(ctx, cfg, lg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer a.Close()

			lg.Info("service_started", map[string]any{"service": cfg.Service, "command": "demo"})
			total, err := a.RunDemo(ctx)
			if err != nil {
				return err
			}
			lg.Info("demo_finished", map[string]any{
				"order_total":  total.StringFixed(2),
				"ledger_total": a.Ledger.Total().StringFixed(2),
			})
			return nil
		},
	}
}
