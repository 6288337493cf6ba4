package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"containers/arraylist"
	"containers/hashset"
	"containers/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the viper instance shared by every subcommand.
type app struct {
	v          *viper.Viper
	configFile string
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "containers",
		Short:         "Hand-rolled hash set and array list",
		Long:          `Runs a scripted walk through a chained hash set and a growable array list, or explores them interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "Config file (default ./containers.yaml)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	flags.Int("capacity", hashset.DefaultCapacity, "Hash set bucket count")
	flags.String("hasher", config.HasherReference, "String hasher (reference, xxhash)")
	flags.Int("list-capacity", arraylist.DefaultCapacity, "Initial array list capacity")

	bind := map[string]string{
		"log.level":     "log-level",
		"log.format":    "log-format",
		"set.capacity":  "capacity",
		"set.hasher":    "hasher",
		"list.capacity": "list-capacity",
	}
	for key, flag := range bind {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newDemoCommand(a),
		newTUICommand(a),
	)
	return rootCmd
}

func (a *app) load() (*config.Config, error) {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func stringHasher(name string) hashset.Hasher[string] {
	if name == config.HasherXXHash {
		return hashset.XXStrings()
	}
	return hashset.Strings()
}
