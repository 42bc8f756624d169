package cli

import (
	"fmt"

	"github.com/alexanderramin/xerplan/internal/xer"
	"github.com/spf13/pflag"
)

// addHoursPerDayFlag registers --hours-per-day, defaulting to the configured
// calendar.
func addHoursPerDayFlag(fs *pflag.FlagSet, target *float64, def float64) {
	if def <= 0 {
		def = xer.DefaultHoursPerDay
	}
	fs.Float64Var(target, "hours-per-day", def, "Working hours per day used to convert hours to workdays")
}

func validateHoursPerDay(v float64) error {
	if v <= 0 {
		return fmt.Errorf("--hours-per-day must be positive, got %v", v)
	}
	return nil
}

// addStrictFlag registers --strict, defaulting to the configured mode.
func addStrictFlag(fs *pflag.FlagSet, target *bool, def bool) {
	fs.BoolVar(target, "strict", def, "Report truncated and dropped rows as warnings")
}
