package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timetraveler/internal/model"
	"github.com/Tiliavir/timetraveler/internal/report"
	"github.com/Tiliavir/timetraveler/internal/timecalc"
)

var (
	diffFrom   string
	diffTo     string
	diffFromTZ string
	diffToTZ   string
	diffUnit   string
	diffFormat string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two dates without prompting",
	Example: `  timetraveler diff --from 2018-01-01 --to "2018-02-01 10:30:00"
  timetraveler diff --from 2018-01-01 --from-tz Asia/Kolkata --to 2018-01-02 --unit hours --format json`,
	Args: cobra.NoArgs,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffFrom, "from", "", "From date (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)")
	diffCmd.Flags().StringVar(&diffTo, "to", "", "To date (YYYY-MM-DD or YYYY-MM-DD HH:MM:SS)")
	diffCmd.Flags().StringVar(&diffFromTZ, "from-tz", "", "Timezone of the from date (default: --timezone)")
	diffCmd.Flags().StringVar(&diffToTZ, "to-tz", "", "Timezone of the to date (default: --timezone)")
	diffCmd.Flags().StringVar(&diffUnit, "unit", "", "Additional output unit: seconds, minutes, hours, days, weeks, years")
	diffCmd.Flags().StringVar(&diffFormat, "format", "table", "Output format: "+strings.Join(report.Formats, ", "))
	_ = diffCmd.MarkFlagRequired("from")
	_ = diffCmd.MarkFlagRequired("to")
}

func runDiff(cmd *cobra.Command, args []string) error {
	from, err := anchorFromFlag("--from", diffFrom, diffFromTZ)
	if err != nil {
		return err
	}
	to, err := anchorFromFlag("--to", diffTo, diffToTZ)
	if err != nil {
		return err
	}

	unit := app.unit
	if diffUnit != "" {
		if unit, err = timecalc.ParseUnit(diffUnit); err != nil {
			return fmt.Errorf("invalid --unit value: %w", err)
		}
	}

	b := report.Builder{Layout: app.cfg.DisplayLayout, Logger: app.logger}
	r, err := b.Build(from, to, unit)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), r, diffFormat, app.styles)
}

// anchorFromFlag builds an anchor from a date flag and an optional timezone
// flag, defaulting to the resolved default timezone.
func anchorFromFlag(name, raw, tz string) (model.Anchor, error) {
	if tz == "" {
		tz = app.timezone
	}
	p, err := timecalc.ParseDate(raw)
	if err != nil {
		return model.Anchor{}, fmt.Errorf("invalid %s value: %w", name, err)
	}
	loc, err := app.catalog.Location(tz)
	if err != nil {
		return model.Anchor{}, fmt.Errorf("invalid %s timezone: %w", name, err)
	}
	return timecalc.NewAnchor(p, loc, tz), nil
}
