package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders done out of total as a bar like
// [████░░░░]  45% (9/20). Green from two thirds up, yellow from one third,
// red below. An empty total renders an empty bar.
func RenderProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	done = max(0, min(done, total))

	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 1.0/3:
		style = StyleRed
	case pct < 2.0/3:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%% %s", style.Render(bar), pct*100, Dim(fmt.Sprintf("(%d/%d)", done, total)))
}
