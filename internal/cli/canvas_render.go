package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/GuilhermeVerrone/process-mapper/internal/canvas"
	"github.com/GuilhermeVerrone/process-mapper/internal/cli/formatter"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/graph"
	"github.com/charmbracelet/lipgloss"
)

// Canvas coordinates are scaled down to terminal cells: one column per
// cellScaleX units of X, one row per cellScaleY units of Y.
const (
	cellScaleX = 10.0
	cellScaleY = 40.0
)

// renderCanvas paints the node grid, the edge list, and the footer. Nodes
// are placed at their scaled positions; overlapping labels shift right so
// every node stays visible.
func renderCanvas(state canvas.State, width, height int, statusMsg string, connecting bool) string {
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(renderHeader(state, width))
	b.WriteString("\n")
	b.WriteString(renderGrid(state, width))
	if len(state.Edges) > 0 {
		b.WriteString("\n")
		b.WriteString(renderEdges(state))
	}
	b.WriteString("\n")
	b.WriteString(renderFooter(state, statusMsg, connecting))
	return b.String()
}

func renderHeader(state canvas.State, width int) string {
	title := formatter.StyleHeader.Render("PROCESS CANVAS")
	status := formatter.Dim(string(state.Status))
	switch state.Status {
	case domain.SyncLoading:
		status = formatter.StyleYellow.Render("loading…")
	case domain.SyncFailed:
		status = formatter.StyleRed.Render("sync failed")
	case domain.SyncSucceeded:
		status = formatter.StyleGreen.Render("synced")
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + status
}

type placedNode struct {
	row, col int
	label    string
}

func renderGrid(state canvas.State, width int) string {
	if len(state.Nodes) == 0 {
		return formatter.Dim("  (no processes yet, press A to add one)")
	}

	placed := make([]placedNode, 0, len(state.Nodes))
	maxRow := 0
	for _, n := range state.Nodes {
		label := nodeLabel(n, n.ID == state.Selected)
		row := int(n.Position.Y / cellScaleY)
		col := int(n.Position.X / cellScaleX)
		if row < 0 {
			row = 0
		}
		if col < 0 {
			col = 0
		}
		if row > maxRow {
			maxRow = row
		}
		placed = append(placed, placedNode{row: row, col: col, label: label})
	}

	// Stable order so collision shifts are deterministic.
	sort.SliceStable(placed, func(i, j int) bool {
		if placed[i].row != placed[j].row {
			return placed[i].row < placed[j].row
		}
		return placed[i].col < placed[j].col
	})

	lines := make([]string, maxRow+1)
	for _, p := range placed {
		line := lines[p.row]
		col := p.col
		if w := lipgloss.Width(line); col < w+1 && w > 0 {
			col = w + 1
		}
		pad := col - lipgloss.Width(line)
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines[p.row] = line + p.label
	}
	return strings.Join(lines, "\n")
}

func nodeLabel(n graph.Node, selected bool) string {
	badge := formatter.TypeBadge(n.Record.Type)
	body := formatter.SwatchStyle(n.Color).Padding(0, 1).Render(n.Label)
	if selected {
		return "▶" + body + badge
	}
	return " " + body + badge
}

func renderEdges(state canvas.State) string {
	byID := make(map[string]string, len(state.Nodes))
	for _, n := range state.Nodes {
		byID[n.ID] = n.Label
	}
	var b strings.Builder
	for i, e := range state.Edges {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatter.Dim(fmt.Sprintf("  %s ─▶ %s", byID[e.Source], byID[e.Target])))
	}
	return b.String()
}

func renderFooter(state canvas.State, statusMsg string, connecting bool) string {
	if statusMsg != "" {
		return formatter.StyleYellow.Render(statusMsg)
	}
	if connecting {
		return formatter.Dim("tab: pick target • enter: link • esc: cancel")
	}
	if state.Err != "" {
		return formatter.StyleRed.Render(state.Err)
	}
	return formatter.Dim("tab: select • arrows: drag • enter: drop • c: connect • a/A: add • e: edit • d: delete • q: quit")
}
