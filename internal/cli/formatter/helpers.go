package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/xer"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// ScheduleDate formats a schedule date as "02 Jan 2006", with the time only
// when it is not midnight. Nil dates render as a dim placeholder.
func ScheduleDate(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("02 Jan 2006")
	}
	return t.Format("02 Jan 2006 15:04")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom is HumanTimestamp against a fixed reference time.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// StatusPill returns a colored status indicator for an activity status.
func StatusPill(status domain.ActivityStatus) string {
	switch status {
	case domain.ActivityCompleted:
		return StatusColor(status).Render("✔ Completed")
	case domain.ActivityInProgress:
		return StatusColor(status).Render("● In Progress")
	case domain.ActivityNotStarted:
		return StatusColor(status).Render("○ Not Started")
	default:
		return StyleDim.Render(string(status))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatNumber prints v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// FormatDays renders hours as workdays, e.g. "12.5d". Nil renders "--".
func FormatDays(hours *float64, hoursPerDay float64) string {
	days := xer.HoursToWorkdays(hours, hoursPerDay)
	if days == nil {
		return Dim("--")
	}
	return FormatNumber(*days) + "d"
}

// FormatFloat renders total float in workdays, colored by criticality.
func FormatFloat(hours *float64, hoursPerDay float64) string {
	if hours == nil {
		return Dim("--")
	}
	return FloatStyle(hours).Render(FormatDays(hours, hoursPerDay))
}

// Plural returns "1 activity" / "3 activities" style counts.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
