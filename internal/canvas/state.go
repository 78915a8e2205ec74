// Package canvas holds the client-resident graph state and the synchronizer
// that reconciles it with the authoritative process store. The node/edge
// lists are locally optimistic: visual deltas apply immediately, store
// mutations reconcile on confirmation, and every operation either fully
// applies its local change or leaves the state untouched.
package canvas

import (
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/graph"
)

// State is the in-memory graph state for one loaded area.
type State struct {
	AreaID   string
	Nodes    []graph.Node
	Edges    []graph.Edge
	Status   domain.SyncStatus
	Err      string
	Selected string // transient selection, never persisted
}

// NewState returns an empty idle state.
func NewState() State {
	return State{Status: domain.SyncIdle}
}

// NodeIndex returns the position of the node with the given id, or -1.
func (s *State) NodeIndex(id string) int {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// Records rebuilds the process collection backing the current nodes.
// Policy checks on the client side run over this collection; it may be
// stale relative to the store, which re-validates independently.
func (s *State) Records() []*domain.Process {
	records := make([]*domain.Process, 0, len(s.Nodes))
	for i := range s.Nodes {
		records = append(records, s.Nodes[i].Record)
	}
	return records
}

// HasChildEdge reports whether any edge originates at the given node,
// i.e. the node has subprocesses as far as the local edge set knows.
func (s *State) HasChildEdge(id string) bool {
	for i := range s.Edges {
		if s.Edges[i].Source == id {
			return true
		}
	}
	return false
}

// removeNode deletes the node and every edge incident to it.
func (s *State) removeNode(id string) {
	if i := s.NodeIndex(id); i >= 0 {
		s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
	}
	kept := s.Edges[:0]
	for _, e := range s.Edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	s.Edges = kept
	if s.Selected == id {
		s.Selected = ""
	}
}

// Change is a purely local visual delta: it mutates in-memory state without
// contacting the store. Drag-in-progress and selection are Changes; the
// drag-stop commit is not.
type Change interface{ apply(*State) }

// MoveChange repositions a node mid-gesture.
type MoveChange struct {
	ID string
	To domain.Position
}

func (c MoveChange) apply(s *State) {
	if i := s.NodeIndex(c.ID); i >= 0 {
		s.Nodes[i].Position = c.To
	}
}

// SelectChange marks a node as selected; an empty ID clears the selection.
type SelectChange struct {
	ID string
}

func (c SelectChange) apply(s *State) {
	if c.ID == "" || s.NodeIndex(c.ID) >= 0 {
		s.Selected = c.ID
	}
}
