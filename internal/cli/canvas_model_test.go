package cli

import (
	"context"
	"testing"

	"github.com/GuilhermeVerrone/process-mapper/internal/canvas"
	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
	"github.com/GuilhermeVerrone/process-mapper/internal/service"
	"github.com/GuilhermeVerrone/process-mapper/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canvasFixture builds a loaded canvas model over a real store with one
// parent/child pair.
func canvasFixture(t *testing.T) (canvasModel, *canvas.Synchronizer, *domain.Process, *domain.Process) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	area := testutil.NewTestArea("RH")
	require.NoError(t, repository.NewSQLiteAreaRepo(db).Create(ctx, area))

	svc := service.NewProcessService(repository.NewSQLiteProcessRepo(db))
	x, y := 50.0, 50.0
	parent, err := svc.Create(ctx, contract.CreateProcessRequest{
		Name: "Contratação", AreaID: area.ID, PositionX: &x, PositionY: &y,
	})
	require.NoError(t, err)
	child, err := svc.Create(ctx, contract.CreateProcessRequest{
		Name: "Entrevista", AreaID: area.ID, ParentID: &parent.ID,
	})
	require.NoError(t, err)

	syn := canvas.NewSynchronizer(svc, canvas.NoopObserver{})
	model := newCanvasModel(syn, area.ID)

	// Run the load command the way the bubbletea runtime would.
	msg := model.Init()()
	updated, _ := model.Update(msg)
	return updated.(canvasModel), syn, parent, child
}

func pressKey(t *testing.T, m canvasModel, keyType tea.KeyType) canvasModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(canvasModel)
}

func TestCanvasModel_LoadPopulatesState(t *testing.T) {
	m, syn, _, _ := canvasFixture(t)

	state := syn.Snapshot()
	assert.Equal(t, domain.SyncSucceeded, state.Status)
	assert.Len(t, state.Nodes, 2)
	assert.NotEmpty(t, m.View())
}

func TestCanvasModel_TabCyclesSelection(t *testing.T) {
	m, syn, _, _ := canvasFixture(t)

	m = pressKey(t, m, tea.KeyTab)
	first := syn.Snapshot().Selected
	assert.NotEmpty(t, first)

	m = pressKey(t, m, tea.KeyTab)
	second := syn.Snapshot().Selected
	assert.NotEqual(t, first, second)

	pressKey(t, m, tea.KeyTab)
	assert.Equal(t, first, syn.Snapshot().Selected, "selection wraps around")
}

func TestCanvasModel_ArrowMovesSelectedLocally(t *testing.T) {
	m, syn, _, _ := canvasFixture(t)

	m = pressKey(t, m, tea.KeyTab)
	state := syn.Snapshot()
	before := state.Nodes[state.NodeIndex(state.Selected)].Position

	pressKey(t, m, tea.KeyRight)

	state = syn.Snapshot()
	after := state.Nodes[state.NodeIndex(state.Selected)].Position
	assert.Equal(t, before.X+moveStep, after.X)
	assert.Equal(t, before.Y, after.Y)
}

func TestCanvasModel_EnterCommitsDraggedPosition(t *testing.T) {
	m, syn, parent, _ := canvasFixture(t)

	// Selection order is node-id sorted; select the parent explicitly.
	syn.Apply(canvas.SelectChange{ID: parent.ID})
	m = pressKey(t, m, tea.KeyDown)
	pressKey(t, m, tea.KeyEnter)
	syn.Flush()

	state := syn.Snapshot()
	pos := state.Nodes[state.NodeIndex(parent.ID)].Position
	assert.Equal(t, 50.0+moveStep, pos.Y)
}

func TestCanvasModel_DeleteParentRefusedLocally(t *testing.T) {
	m, syn, parent, _ := canvasFixture(t)

	syn.Apply(canvas.SelectChange{ID: parent.ID})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(canvasModel)

	assert.Equal(t, modeNormal, m.mode)
	assert.Contains(t, m.statusMsg, "subprocesses")
	assert.Len(t, syn.Snapshot().Nodes, 2)
}

func TestCanvasModel_DeleteLeafConfirmFlow(t *testing.T) {
	m, syn, _, child := canvasFixture(t)

	syn.Apply(canvas.SelectChange{ID: child.ID})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(canvasModel)
	require.Equal(t, modeConfirmDelete, m.mode)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(canvasModel)
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Len(t, syn.Snapshot().Nodes, 1)
	assert.Empty(t, syn.Snapshot().Edges)
}

func TestCanvasModel_EscCancelsConfirm(t *testing.T) {
	m, syn, _, child := canvasFixture(t)

	syn.Apply(canvas.SelectChange{ID: child.ID})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(canvasModel)
	require.Equal(t, modeConfirmDelete, m.mode)

	m = pressKey(t, m, tea.KeyEsc)
	assert.Equal(t, modeNormal, m.mode)
	assert.Len(t, syn.Snapshot().Nodes, 2)
}

func TestCanvasModel_ConnectFlow(t *testing.T) {
	m, syn, parent, _ := canvasFixture(t)
	ctx := context.Background()

	// Add a third, unparented process to connect under the parent.
	created, err := syn.CreateProcess(ctx, contract.CreateProcessRequest{
		Name:   "Onboarding",
		AreaID: m.areaID,
	})
	require.NoError(t, err)

	syn.Apply(canvas.SelectChange{ID: parent.ID})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(canvasModel)
	require.Equal(t, modeConnect, m.mode)

	syn.Apply(canvas.SelectChange{ID: created.ID})
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(canvasModel)
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, modeNormal, m.mode)
	assert.Len(t, syn.Snapshot().Edges, 2)
}

func TestCanvasModel_QuitKey(t *testing.T) {
	m, _, _, _ := canvasFixture(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(canvasModel)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}
