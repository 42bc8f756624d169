package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/xerplan/internal/service"
	"github.com/alexanderramin/xerplan/internal/xer"
)

// FormatImportResult renders the outcome of an import.
func FormatImportResult(res *service.ImportResult) string {
	var b strings.Builder

	verb := "Updated"
	if res.Created {
		verb = "Created"
	}
	fmt.Fprintf(&b, "%s project %s %s\n\n", verb, Bold(res.Project.DisplayID()), TruncID(res.Project.ID))

	rows := [][]string{
		{"WBS nodes", fmt.Sprint(res.WBSCount)},
		{"Activities", fmt.Sprint(res.ActivityCount)},
		{"Relationships", fmt.Sprint(res.RelationshipCount)},
	}
	if res.SkippedRelationships > 0 {
		rows = append(rows, []string{"Skipped links", StyleYellow.Render(fmt.Sprint(res.SkippedRelationships))})
	}
	if res.OrphanedWBS > 0 {
		rows = append(rows, []string{"Orphaned WBS", StyleYellow.Render(fmt.Sprint(res.OrphanedWBS))})
	}
	if res.XERVersion != "" {
		rows = append(rows, []string{"XER version", res.XERVersion})
	}
	b.WriteString(RenderTableAligned([]string{"ITEM", "COUNT"}, rows, []bool{false, true}))

	if len(res.Warnings) > 0 {
		b.WriteString("\n" + formatWarnings(res.Warnings))
	}
	return RenderBox("Import", b.String())
}

// FormatInspect renders what a parse recovered from a file, without storing
// anything.
func FormatInspect(path string, res *xer.ParseResult) string {
	var b strings.Builder

	b.WriteString(Bold(path) + "\n")
	if res.Header != nil {
		fmt.Fprintf(&b, "%s %s  %s %s\n", Dim("version"), res.Header.Version, Dim("exported"), res.Header.ExportDate)
	}
	b.WriteString("\n")

	rows := make([][]string, 0, len(res.Tables))
	for _, t := range res.Tables {
		rows = append(rows, []string{t.Name, fmt.Sprint(t.Rows), fmt.Sprint(len(t.Fields))})
	}
	if len(rows) > 0 {
		b.WriteString(RenderTableAligned([]string{"TABLE", "ROWS", "FIELDS"}, rows, []bool{false, true, true}))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s  %s  %s  %s\n",
		Plural(len(res.Projects), "project", "projects"),
		Plural(len(res.WBS), "WBS node", "WBS nodes"),
		Plural(len(res.Tasks), "activity", "activities"),
		Plural(len(res.TaskPreds), "relationship", "relationships"))

	if len(res.Errors) > 0 {
		b.WriteString("\n" + Header("Errors") + "\n")
		for _, e := range res.Errors {
			b.WriteString(StyleRed.Render("✖ ") + e + "\n")
		}
	}
	if len(res.Warnings) > 0 {
		b.WriteString("\n" + formatWarnings(res.Warnings))
	}
	return RenderBox("Inspect", b.String())
}

func formatWarnings(warnings []string) string {
	var b strings.Builder
	b.WriteString(Header("Warnings") + "\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("! ") + w + "\n")
	}
	return b.String()
}
