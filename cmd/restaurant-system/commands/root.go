package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"restaurant-system/internal/common/logger"
	"restaurant-system/internal/config"
)

var (
	cfgPath string
	cfg     *config.Config
	lg      *logger.Logger
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "restaurant-system",
		Short:         "Restaurant ordering model with order totals and notifications",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			cfg = c
			lg = logger.New(cfg.Service)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to YAML config")
	root.AddCommand(demoCmd(), subscribeCmd())
	return root
}

func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := newRoot().ExecuteContext(ctx)
	if err != nil {
		if lg == nil {
			lg = logger.New("bootstrap")
		}
		lg.Error("fatal", err, nil)
	}
	return err
}
