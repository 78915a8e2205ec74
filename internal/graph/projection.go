// Package graph projects process records into the node/edge form consumed by
// the canvas. The projection is deterministic, idempotent, and side-effect
// free: the same process collection always yields the same node and edge
// sets regardless of input order.
package graph

import (
	"fmt"
	"sort"

	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
)

// Node is the visual projection of one process.
type Node struct {
	ID       string
	Label    string
	Color    string
	Type     domain.ProcessType
	Position domain.Position
	Record   *domain.Process // backing record, authoritative metadata
}

// Edge is the visual projection of one parent link.
type Edge struct {
	ID     string
	Source string // parent process id
	Target string // child process id
}

// EdgeID derives the stable identifier for a parent→child edge.
func EdgeID(parentID, childID string) string {
	return fmt.Sprintf("e-%s-%s", parentID, childID)
}

// NodeFor projects a single process into its node.
func NodeFor(p *domain.Process) Node {
	color := p.Color
	if color == "" {
		color = domain.DefaultColor
	}
	return Node{
		ID:       p.ID,
		Label:    p.Name,
		Color:    color,
		Type:     p.Type,
		Position: p.Position,
		Record:   p,
	}
}

// EdgeFor projects a process's parent link into its edge, or false for roots.
func EdgeFor(p *domain.Process) (Edge, bool) {
	if p.ParentID == nil {
		return Edge{}, false
	}
	return Edge{
		ID:     EdgeID(*p.ParentID, p.ID),
		Source: *p.ParentID,
		Target: p.ID,
	}, true
}

// Project derives the full node and edge lists for a process collection:
// one node per process, one edge per non-nil parent reference. Output is
// sorted by id so projections of the same collection compare equal.
func Project(processes []*domain.Process) ([]Node, []Edge) {
	nodes := make([]Node, 0, len(processes))
	edges := make([]Edge, 0, len(processes))
	for _, p := range processes {
		nodes = append(nodes, NodeFor(p))
		if e, ok := EdgeFor(p); ok {
			edges = append(edges, e)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return nodes, edges
}

// Roots counts the processes without a parent.
func Roots(processes []*domain.Process) int {
	n := 0
	for _, p := range processes {
		if p.ParentID == nil {
			n++
		}
	}
	return n
}
