package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// ProcessTree renders an area's processes as an indented forest using
// box-drawing connectors. Roots sort by name; children render under their
// parent in name order. Each line carries the type badge, the swatch-colored
// name, and a dim owner badge right-aligned.
func ProcessTree(processes []*domain.Process) string {
	if len(processes) == 0 {
		return Dim("no processes")
	}

	children := make(map[string][]*domain.Process)
	var roots []*domain.Process
	for _, p := range processes {
		if p.ParentID == nil {
			roots = append(roots, p)
		} else {
			children[*p.ParentID] = append(children[*p.ParentID], p)
		}
	}
	byName := func(list []*domain.Process) {
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	byName(roots)
	for id := range children {
		byName(children[id])
	}

	type line struct {
		content string
		badge   string
	}
	var lines []line
	maxWidth := 0

	var walk func(p *domain.Process, prefix string, isLast bool, depth int)
	walk = func(p *domain.Process, prefix string, isLast bool, depth int) {
		connector := ""
		childPrefix := prefix
		if depth > 0 {
			if isLast {
				connector = prefix + treeCorner
				childPrefix = prefix + "   "
			} else {
				connector = prefix + treeBranch
				childPrefix = prefix + treePipe
			}
		}

		content := connector + TypeBadge(p.Type) + " " + SwatchStyle(p.Color).Render(" "+p.Name+" ")
		badge := ""
		if p.Owner != "" {
			badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", p.Owner))
		}
		lines = append(lines, line{content: content, badge: badge})
		if w := lipgloss.Width(content); w > maxWidth {
			maxWidth = w
		}

		kids := children[p.ID]
		for i, child := range kids {
			walk(child, childPrefix, i == len(kids)-1, depth+1)
		}
	}

	for i, root := range roots {
		walk(root, "", i == len(roots)-1, 0)
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxWidth - lipgloss.Width(li.content)
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
