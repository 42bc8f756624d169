package formatter

import (
	"sort"
	"strings"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders a list of TreeItems as an indented tree using
// box-drawing characters for connectors. Detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// lastAt[l] records whether the open ancestor at level l was a last child,
	// so its column is blank rather than a pipe.
	var lastAt []bool

	// Pass 1: build each line's content and track max visible width.
	for idx, item := range items {
		if item.Level >= len(lastAt) {
			lastAt = append(lastAt, make([]bool, item.Level-len(lastAt)+1)...)
		}
		lastAt[item.Level] = item.IsLast

		var prefix strings.Builder
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				if lastAt[i] {
					prefix.WriteString(treeBlank)
				} else {
					prefix.WriteString(treePipe)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		content := StyleDim.Render(prefix.String()) + item.Title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	// Pass 2: render with right-aligned badges.
	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}

// WBSTree flattens WBS nodes into depth-first TreeItems. Siblings keep their
// sort order; the detail badge shows how many activities sit directly under
// each node.
func WBSTree(nodes []*domain.WBSNode, activityCounts map[string]int) []TreeItem {
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		known[n.ID] = true
	}
	children := make(map[string][]*domain.WBSNode)
	for _, n := range nodes {
		parent := ""
		if n.ParentID != nil && known[*n.ParentID] {
			parent = *n.ParentID
		}
		children[parent] = append(children[parent], n)
	}
	for _, list := range children {
		sort.SliceStable(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
	}

	var items []TreeItem
	var walk func(parent string, level int)
	walk = func(parent string, level int) {
		list := children[parent]
		for i, n := range list {
			title := n.Name
			if n.ShortCode != "" {
				title = StyleBold.Render(n.ShortCode) + " " + n.Name
			}
			detail := ""
			if c := activityCounts[n.ID]; c > 0 {
				detail = Plural(c, "activity", "activities")
			}
			items = append(items, TreeItem{Title: title, Level: level, IsLast: i == len(list)-1, Detail: detail})
			walk(n.ID, level+1)
		}
	}
	walk("", 0)
	return items
}
