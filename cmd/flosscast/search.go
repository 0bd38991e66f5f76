package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func searchCommand(get func() *services) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find cities by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			cities, err := get().Cities.SearchCities(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}

			out := cmd.OutOrStdout()
			if len(cities) == 0 {
				fmt.Fprintf(out, "No cities match %q.\n", query)
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CITY\tLAT\tLON\tKEY")
			for _, city := range cities {
				fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%s\n", city.DisplayName(), city.Latitude, city.Longitude, city.Key())
			}
			return w.Flush()
		},
	}
}
