package main

import (
	"github.com/spf13/cobra"
)

func serveCommand(get func() *services) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().Serve(cmd.Context())
		},
	}
}
