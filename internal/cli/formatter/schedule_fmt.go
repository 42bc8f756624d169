package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/service"
)

const maxNameWidth = 40

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// FormatActivityList renders activities as a table with durations and float
// in workdays.
func FormatActivityList(title string, activities []*domain.Activity, hoursPerDay float64) string {
	if len(activities) == 0 {
		return RenderBox(title, Dim("No activities."))
	}

	headers := []string{"CODE", "NAME", "STATUS", "START", "FINISH", "REMAIN", "FLOAT"}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		code := a.Code
		if a.IsCritical() {
			code = StyleRedBold.Render(code)
		}
		rows = append(rows, []string{
			code,
			truncate(a.Name, maxNameWidth),
			StatusPill(a.Status),
			ScheduleDate(a.Start()),
			ScheduleDate(a.Finish()),
			FormatDays(a.RemainingDurationHrs, hoursPerDay),
			FormatFloat(a.TotalFloatHrs, hoursPerDay),
		})
	}

	table := RenderTableAligned(headers, rows, []bool{false, false, false, false, false, true, true})
	footer := Dim(Plural(len(activities), "activity", "activities"))
	return RenderBox(title, table+"\n"+footer)
}

// FormatSummary renders the schedule summary card.
func FormatSummary(sum *service.ScheduleSummary) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(sum.Project.DisplayID()) + "  " + TruncID(sum.Project.ID) + "\n\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value)
	}
	field("DATA DATE", ScheduleDate(sum.DataDate))
	field("START", ScheduleDate(sum.Project.PlanStart))
	field("FINISH", ScheduleDate(sum.Project.PlanEnd))
	field("PROGRESS", RenderProgress(sum.ByStatus[domain.ActivityCompleted], sum.ActivityCount, 20))
	b.WriteString("\n")

	field("TOTAL", fmt.Sprint(sum.ActivityCount))
	for _, st := range []domain.ActivityStatus{domain.ActivityCompleted, domain.ActivityInProgress, domain.ActivityNotStarted} {
		fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render(fmt.Sprintf("%-10s", "")),
			StatusPill(st)+" "+fmt.Sprint(sum.ByStatus[st]))
	}
	critical := fmt.Sprint(sum.CriticalCount)
	if sum.CriticalCount > 0 {
		critical = StyleRedBold.Render(critical)
	}
	field("CRITICAL", critical)
	field("LINKS", fmt.Sprint(sum.RelationshipCount))
	field("REMAINING", fmt.Sprintf("%sd %s", FormatNumber(sum.RemainingWorkdays),
		Dim(fmt.Sprintf("(%s h/day)", FormatNumber(sum.HoursPerDay)))))

	if sum.LastImport != nil {
		b.WriteString("\n")
		field("IMPORTED", fmt.Sprintf("%s %s", HumanTimestamp(sum.LastImport.ImportedAt), Dim(sum.LastImport.FileName)))
	}
	return RenderBox("Schedule summary", b.String())
}
