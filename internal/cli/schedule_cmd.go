package cli

import (
	"fmt"

	"github.com/alexanderramin/xerplan/internal/cli/formatter"
	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Browse imported activities",
	}
	cmd.AddCommand(newActivityListCmd(app))
	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var critical bool
	var hoursPerDay float64

	cmd := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's activities in schedule order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateHoursPerDay(hoursPerDay); err != nil {
				return err
			}
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			var activities []*domain.Activity
			title := "Activities · " + p.DisplayID()
			if critical {
				activities, err = app.Schedule.CriticalPath(ctx, p.ID)
				title = "Critical path · " + p.DisplayID()
			} else {
				activities, err = app.Schedule.ListActivities(ctx, p.ID)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivityList(title, activities, hoursPerDay))
			return nil
		},
	}

	cmd.Flags().BoolVar(&critical, "critical", false, "Only activities with zero or negative total float")
	addHoursPerDayFlag(cmd.Flags(), &hoursPerDay, app.HoursPerDay)

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var hoursPerDay float64

	cmd := &cobra.Command{
		Use:   "summary PROJECT",
		Short: "Summarize a project's schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateHoursPerDay(hoursPerDay); err != nil {
				return err
			}
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			sum, err := app.Schedule.Summary(ctx, p.ID, hoursPerDay)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(sum))
			return nil
		},
	}

	addHoursPerDayFlag(cmd.Flags(), &hoursPerDay, app.HoursPerDay)

	return cmd
}
