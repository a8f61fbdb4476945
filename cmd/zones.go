package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var zonesFilter string

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the accepted timezone identifiers",
	Args:  cobra.NoArgs,
	RunE:  runZones,
}

func init() {
	zonesCmd.Flags().StringVar(&zonesFilter, "filter", "", "Only list zones containing this text (case-insensitive)")
}

func runZones(cmd *cobra.Command, args []string) error {
	names := app.catalog.Names()
	if zonesFilter != "" {
		names = app.catalog.Filter(zonesFilter)
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No zones found.")
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
	app.logger.Debug("zones listed", "count", len(names), "default", app.timezone)
	return nil
}
