package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand builds the command tree. load runs once before any
// subcommand and its services are closed afterwards.
func newRootCommand(load func() (*services, error)) *cobra.Command {
	var svc *services
	get := func() *services { return svc }

	rootCmd := &cobra.Command{
		Use:          "flosscast",
		Short:        "Cached weather forecasts from Open-Meteo",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			svc, err = load()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if svc == nil || svc.Close == nil {
				return nil
			}
			return svc.Close()
		},
	}

	rootCmd.AddCommand(
		forecastCommand(get),
		searchCommand(get),
		cacheCommand(get),
		serveCommand(get),
	)
	return rootCmd
}
