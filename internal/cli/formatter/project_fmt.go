package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ProjectShowData holds everything the project show card renders.
type ProjectShowData struct {
	Project        *domain.Project
	Nodes          []*domain.WBSNode
	ActivityCounts map[string]int // WBS node id -> activity count
	Imports        []*domain.ImportRun
}

// FormatProjectList renders stored projects as a table inside a box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No projects imported yet."))
	}
	headers := []string{"ID", "NAME", "SOURCE", "DATA DATE", "UPDATED"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		source := p.SourceProjectID
		if strings.TrimSpace(source) == "" {
			source = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.DisplayID()),
			source,
			ScheduleDate(p.DataDate),
			HumanTimestamp(p.UpdatedAt),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectShow renders project metadata beside its WBS tree, followed
// by recent imports.
func FormatProjectShow(data ProjectShowData) string {
	left := buildMetadataPanel(data.Project)

	tree := Dim("No WBS nodes.")
	if items := WBSTree(data.Nodes, data.ActivityCounts); len(items) > 0 {
		tree = RenderTree(items)
	}
	right := StyleHeader.Render("WBS") + "\n" + tree

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	if len(data.Imports) > 0 {
		rows := make([][]string, 0, len(data.Imports))
		for _, run := range data.Imports {
			warn := fmt.Sprint(len(run.Warnings))
			if len(run.Warnings) > 0 {
				warn = StyleYellow.Render(warn)
			}
			rows = append(rows, []string{
				HumanTimestamp(run.ImportedAt),
				run.FileName,
				fmt.Sprint(run.ActivityCount),
				fmt.Sprint(run.RelationshipCount),
				warn,
			})
		}
		body += "\n\n" + Header("Imports") + "\n" +
			RenderTableAligned([]string{"WHEN", "FILE", "ACTS", "LINKS", "WARN"}, rows, []bool{false, false, true, true, true})
	}
	return RenderBox("", body)
}

func buildMetadataPanel(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.DisplayID()) + "\n\n")
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("ID       "), TruncID(p.ID))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("SOURCE   "), StyleFg.Render(p.SourceProjectID))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("START    "), ScheduleDate(p.PlanStart))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("FINISH   "), ScheduleDate(p.PlanEnd))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("DATA DATE"), ScheduleDate(p.DataDate))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("UPDATED  "), HumanTimestamp(p.UpdatedAt))

	return lipgloss.NewStyle().Width(40).Render(b.String())
}
