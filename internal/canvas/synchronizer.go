package canvas

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/graph"
	"github.com/GuilhermeVerrone/process-mapper/internal/hierarchy"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
)

// Store is the port to the authoritative process store. In the single-binary
// build it is satisfied by service.ProcessService; a remote client would
// satisfy it equally. Every call is treated as fallible and possibly slow.
type Store interface {
	ListByArea(ctx context.Context, areaID string) ([]*domain.Process, error)
	Create(ctx context.Context, req contract.CreateProcessRequest) (*domain.Process, error)
	Update(ctx context.Context, id string, req contract.UpdateProcessRequest) (*domain.Process, error)
	UpdatePosition(ctx context.Context, id string, req contract.UpdatePositionRequest) (*domain.Process, error)
	SetParent(ctx context.Context, id string, parentID string) (*domain.Process, error)
	Delete(ctx context.Context, id string) error
}

// Synchronizer owns the graph state for the currently viewed area and
// reconciles local changes with the store. Callers may invoke operations
// from concurrent UI commands; a single mutex serializes state mutations,
// standing in for the original's single event queue.
type Synchronizer struct {
	mu       sync.Mutex
	state    State
	store    Store
	observer Observer

	inflight sync.WaitGroup // fire-and-forget position persists
}

// NewSynchronizer creates a synchronizer in the idle state.
func NewSynchronizer(store Store, observers ...Observer) *Synchronizer {
	var obs Observer = NoopObserver{}
	for _, o := range observers {
		if o != nil {
			obs = o
			break
		}
	}
	return &Synchronizer{state: NewState(), store: store, observer: obs}
}

// Snapshot returns a copy of the current state for rendering. The slices are
// copied so the renderer never observes a half-applied mutation.
func (s *Synchronizer) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Nodes = append([]graph.Node(nil), s.state.Nodes...)
	snap.Edges = append([]graph.Edge(nil), s.state.Edges...)
	return snap
}

// LoadArea fetches the area's processes and replaces the node/edge state
// with their projection. Calling again for an area that is already loading
// or loaded is a no-op: repeated UI triggers must not cause fetch storms.
// Loading a different area restarts the cycle, even mid-flight; the earlier
// area's late response is discarded by finishLoad.
func (s *Synchronizer) LoadArea(ctx context.Context, areaID string) error {
	if !s.beginLoad(areaID) {
		return nil
	}
	processes, err := s.store.ListByArea(ctx, areaID)
	return s.finishLoad(areaID, processes, err)
}

// beginLoad transitions to loading, reporting whether a fetch should start.
func (s *Synchronizer) beginLoad(areaID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state.Status {
	case domain.SyncLoading, domain.SyncSucceeded:
		if s.state.AreaID == areaID {
			return false
		}
	}
	s.state = NewState()
	s.state.AreaID = areaID
	s.state.Status = domain.SyncLoading
	return true
}

// finishLoad reconciles a fetch response. A late response for an area the
// user has already navigated away from is discarded.
func (s *Synchronizer) finishLoad(areaID string, processes []*domain.Process, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.AreaID != areaID {
		s.observer.OnSync(SyncEvent{Op: "load", Err: fmt.Errorf("discarding stale response for area %s", areaID)})
		return nil
	}
	if err != nil {
		s.state.Status = domain.SyncFailed
		s.state.Err = err.Error()
		return err
	}
	s.state.Nodes, s.state.Edges = graph.Project(processes)
	s.state.Status = domain.SyncSucceeded
	s.state.Err = ""
	return nil
}

// Apply applies a purely local visual change. Nothing is persisted until a
// commit operation fires.
func (s *Synchronizer) Apply(change Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	change.apply(&s.state)
}

// CommitPosition applies a node position locally and persists it in the
// background. The local position stands regardless of the network outcome:
// a failed persist is surfaced through the observer, never rolled back.
// Position drift is accepted over canvas jank.
func (s *Synchronizer) CommitPosition(ctx context.Context, id string, x, y float64) {
	s.mu.Lock()
	i := s.state.NodeIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.state.Nodes[i].Position = domain.Position{X: x, Y: y}
	s.state.Nodes[i].Record.Position = domain.Position{X: x, Y: y}
	s.mu.Unlock()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		_, err := s.store.UpdatePosition(ctx, id, contract.UpdatePositionRequest{PositionX: x, PositionY: y})
		s.observer.OnSync(SyncEvent{Op: "commit-position", ProcessID: id, Err: err})
	}()
}

// Flush waits for in-flight fire-and-forget persists. Called on shutdown
// and by tests.
func (s *Synchronizer) Flush() {
	s.inflight.Wait()
}

// Connect reparents target under source. The edge is never cosmetic: the
// link policy runs against the local collection first, the store persists
// the new parent, and only a confirmed response adds the local edge.
func (s *Synchronizer) Connect(ctx context.Context, sourceID, targetID string) error {
	s.mu.Lock()
	if err := hierarchy.ValidateLink(sourceID, targetID, s.state.Records()); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	confirmed, err := s.store.SetParent(ctx, targetID, sourceID)
	if err != nil {
		s.pruneIfGone(targetID, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.state.NodeIndex(targetID); i >= 0 {
		s.replaceNodeLocked(i, confirmed)
	}
	edgeID := graph.EdgeID(sourceID, targetID)
	for _, e := range s.state.Edges {
		if e.ID == edgeID {
			return nil
		}
	}
	s.state.Edges = append(s.state.Edges, graph.Edge{ID: edgeID, Source: sourceID, Target: targetID})
	return nil
}

// CreateProcess validates locally, issues the create, and appends the
// confirmed projection. There is no optimistic node: a rejected create
// leaves the canvas exactly as it was.
func (s *Synchronizer) CreateProcess(ctx context.Context, req contract.CreateProcessRequest) (*domain.Process, error) {
	s.mu.Lock()
	input := hierarchy.CreateInput{Name: req.Name, AreaID: req.AreaID, ParentID: req.ParentID}
	if err := hierarchy.ValidateCreate(input, s.state.Records()); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	confirmed, err := s.store.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Nodes = append(s.state.Nodes, graph.NodeFor(confirmed))
	if e, ok := graph.EdgeFor(confirmed); ok {
		s.state.Edges = append(s.state.Edges, e)
	}
	return confirmed, nil
}

// UpdateProcess replaces the node's backing record with the confirmed one
// and re-derives its display in place. Node identity is preserved: the id
// and the current local position survive the update.
func (s *Synchronizer) UpdateProcess(ctx context.Context, id string, req contract.UpdateProcessRequest) (*domain.Process, error) {
	confirmed, err := s.store.Update(ctx, id, req)
	if err != nil {
		s.pruneIfGone(id, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.state.NodeIndex(id); i >= 0 {
		s.replaceNodeLocked(i, confirmed)
	}
	return confirmed, nil
}

// DeleteProcess removes a process. The local child pre-check mirrors the
// store's authoritative check for responsiveness; the store re-validates
// independently because the local edge set may be stale. On confirmation
// the node and every incident edge disappear.
func (s *Synchronizer) DeleteProcess(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.state.HasChildEdge(id) {
		s.mu.Unlock()
		return fmt.Errorf("process has subprocesses: %w", repository.ErrConflict)
	}
	s.mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		s.pruneIfGone(id, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.removeNode(id)
	return nil
}

// replaceNodeLocked swaps in the confirmed record while keeping the node's
// current canvas position.
func (s *Synchronizer) replaceNodeLocked(i int, confirmed *domain.Process) {
	position := s.state.Nodes[i].Position
	node := graph.NodeFor(confirmed)
	node.Position = position
	node.Record.Position = position
	s.state.Nodes[i] = node
}

// pruneIfGone drops a node the store no longer knows about. A NotFound on
// update or delete means the local record is stale; keeping it would leave
// a ghost on the canvas.
func (s *Synchronizer) pruneIfGone(id string, err error) {
	if !errors.Is(err, repository.ErrNotFound) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.removeNode(id)
	s.observer.OnSync(SyncEvent{Op: "prune-stale", ProcessID: id, Err: err})
}
