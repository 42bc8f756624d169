package cli

import (
	"fmt"

	"github.com/alexanderramin/xerplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const recentImportLimit = 5

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage imported projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectDeleteCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT",
		Short: "Show project metadata, its WBS tree and recent imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			nodes, err := app.Schedule.ListWBS(ctx, p.ID)
			if err != nil {
				return err
			}
			activities, err := app.Schedule.ListActivities(ctx, p.ID)
			if err != nil {
				return err
			}
			counts := make(map[string]int)
			for _, a := range activities {
				if a.WBSNodeID != nil {
					counts[*a.WBSNodeID]++
				}
			}
			imports, err := app.Projects.RecentImports(ctx, p.ID, recentImportLimit)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectShow(formatter.ProjectShowData{
				Project:        p,
				Nodes:          nodes,
				ActivityCounts: counts,
				Imports:        imports,
			}))
			return nil
		},
	}
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT",
		Short: "Delete a project and its schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := resolveProject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				ok, err := app.confirm(
					fmt.Sprintf("Delete project %s?", p.DisplayID()),
					"Its WBS, activities, relationships and import history are removed.",
				)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled.")
					return nil
				}
			}

			if err := app.Projects.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", p.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")

	return cmd
}
