package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func cacheCommand(get func() *services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or reset the forecast cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "reset",
			Short: "Replace the cache document with an empty one",
			Long: `Replace the cache document with an empty one. This is the way out of
a corrupt or inconsistent cache document.`,
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				svc := get()
				if err := svc.Forecasts.ResetCache(cmd.Context(), svc.CacheDir); err != nil {
					return fmt.Errorf("reset cache: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cache in %s reset.\n", svc.CacheDir)
				return nil
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List the cached coordinate buckets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				svc := get()
				keys, err := svc.Forecasts.CachedKeys(cmd.Context(), svc.CacheDir)
				if err != nil {
					return fmt.Errorf("list cache keys: %w", err)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
				return nil
			},
		},
	)
	return cmd
}
