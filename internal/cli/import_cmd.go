package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/xerplan/internal/cli/formatter"
	"github.com/alexanderramin/xerplan/internal/service"
	"github.com/alexanderramin/xerplan/internal/xer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var projectRef string
	var strict, yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a Primavera P6 XER schedule",
		Long: "Import a Primavera P6 XER schedule. A file whose proj_id was imported\n" +
			"before replaces that project's schedule; --project picks the target explicitly.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			var parseOpts []xer.Option
			if strict {
				parseOpts = append(parseOpts, xer.WithStrict())
			}
			parsed, err := xer.ParseFile(path, parseOpts...)
			if err != nil {
				return err
			}

			projectID := ""
			if projectRef != "" {
				p, err := resolveProject(ctx, app, projectRef)
				if err != nil {
					return err
				}
				projectID = p.ID
			}

			if !yes && app.interactive() {
				target, err := app.Import.ResolveTarget(ctx, &parsed, projectID)
				if err != nil {
					return err
				}
				if target.Project != nil && target.Activities > 0 {
					ok, err := app.confirm(
						fmt.Sprintf("Replace the schedule of %s?", target.Project.DisplayID()),
						fmt.Sprintf("%s will be replaced by %s.",
							formatter.Plural(target.Activities, "stored activity", "stored activities"),
							filepath.Base(path)),
					)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
						return nil
					}
				}
			}

			res, err := app.Import.ImportParsed(ctx, &parsed, service.ImportOptions{
				ProjectID: projectID,
				Strict:    strict,
				FileName:  filepath.Base(path),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Replace the schedule of this project (name, ID, or ID prefix)")
	addStrictFlag(cmd.Flags(), &strict, app.Strict)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace an existing schedule without asking")

	return cmd
}

func newInspectCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Parse an XER file and report what it contains without importing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var parseOpts []xer.Option
			if strict {
				parseOpts = append(parseOpts, xer.WithStrict())
			}
			parsed, err := xer.ParseFile(args[0], parseOpts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatInspect(args[0], &parsed))
			return nil
		},
	}

	addStrictFlag(cmd.Flags(), &strict, app.Strict)

	return cmd
}
