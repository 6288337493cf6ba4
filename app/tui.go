package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"containers/internal/logger"
	"containers/internal/tui"
)

func newTUICommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Explore the containers interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}

			// The terminal belongs to the UI, so logs only go to a file.
			if cfg.Log.Output == "stderr" || cfg.Log.Output == "stdout" || cfg.Log.Output == "" {
				cfg.Log.Output = "discard"
			}
			log, closer, err := logger.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer closer.Close()

			log.Info("starting visualizer", "set_capacity", cfg.Set.Capacity, "hasher", cfg.Set.Hasher)
			return tui.Run(tui.Options{
				SetCapacity:  cfg.Set.Capacity,
				Hasher:       stringHasher(cfg.Set.Hasher),
				ListCapacity: cfg.List.Capacity,
				Logger:       log,
			})
		},
	}

	cmd.Flags().String("log-file", "", "Write logs to this file while the UI runs")
	if err := a.v.BindPFlag("log.output", cmd.Flags().Lookup("log-file")); err != nil {
		panic(err)
	}
	return cmd
}
