package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timetraveler/internal/timecalc"
)

var convertCmd = &cobra.Command{
	Use:     "convert <quantity> <from-unit> <to-unit>",
	Short:   "Re-express a quantity of time in another unit",
	Example: "  timetraveler convert 60 minutes hours",
	Args:    cobra.ExactArgs(3),
	RunE:    runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	quantity, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", args[0], err)
	}
	from, err := timecalc.ParseUnit(args[1])
	if err != nil {
		return err
	}
	to, err := timecalc.ParseUnit(args[2])
	if err != nil {
		return err
	}

	v, err := timecalc.Convert(quantity, from, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), timecalc.FormatQuantity(v, to))
	return nil
}
