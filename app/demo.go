package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"containers/internal/config"
	"containers/internal/demo"
	"containers/internal/logger"
)

func newDemoCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the scripted container walk-through",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			return runDemo(cmd, cfg)
		},
	}

	cmd.Flags().String("lang", "en", "Caption language (en, ru)")
	if err := a.v.BindPFlag("demo.lang", cmd.Flags().Lookup("lang")); err != nil {
		panic(err)
	}
	return cmd
}

func runDemo(cmd *cobra.Command, cfg *config.Config) error {
	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer closer.Close()

	lang, err := demo.ParseLang(cfg.Demo.Lang)
	if err != nil {
		return err
	}

	log.Debug("running demo",
		"lang", lang.String(),
		"set_capacity", cfg.Set.Capacity,
		"hasher", cfg.Set.Hasher,
		"list_capacity", cfg.List.Capacity,
	)

	return demo.Run(cmd.OutOrStdout(), demo.Options{
		Lang:         lang,
		SetCapacity:  cfg.Set.Capacity,
		Hasher:       stringHasher(cfg.Set.Hasher),
		ListCapacity: cfg.List.Capacity,
		Logger:       log,
	})
}
