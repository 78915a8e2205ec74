package cli

import (
	"context"
	"fmt"

	"github.com/GuilhermeVerrone/process-mapper/internal/canvas"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// moveStep is the canvas-coordinate distance one arrow press drags a node.
const moveStep = 20

type canvasMode int

const (
	modeNormal canvasMode = iota
	modeConnect
	modeForm
	modeConfirmDelete
)

type canvasKeyMap struct {
	NextNode key.Binding
	PrevNode key.Binding
	Move     key.Binding
	Commit   key.Binding
	Connect  key.Binding
	AddRoot  key.Binding
	AddChild key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultCanvasKeys() canvasKeyMap {
	return canvasKeyMap{
		NextNode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next node")),
		PrevNode: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev node")),
		Move:     key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "drag")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop/confirm")),
		Connect:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
		AddRoot:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add root")),
		AddChild: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add subprocess")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Messages from synchronizer commands back into the event loop. Every store
// interaction runs as a tea.Cmd, so all model mutations stay serialized on
// the bubbletea update goroutine.
type (
	loadDoneMsg   struct{ err error }
	mutateDoneMsg struct {
		op  string
		err error
	}
)

type canvasModel struct {
	syn    *canvas.Synchronizer
	areaID string
	keys   canvasKeyMap

	mode          canvasMode
	connectSource string
	deleteTarget  string
	dragging      bool

	form     *huh.Form
	formData *processFormData

	statusMsg string
	width     int
	height    int
	quitting  bool
}

func newCanvasModel(syn *canvas.Synchronizer, areaID string) canvasModel {
	return canvasModel{
		syn:    syn,
		areaID: areaID,
		keys:   defaultCanvasKeys(),
	}
}

func (m canvasModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m canvasModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: m.syn.LoadArea(context.Background(), m.areaID)}
	}
}

func (m canvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadDoneMsg:
		if msg.err != nil {
			m.statusMsg = "load failed: " + msg.err.Error()
		}
		return m, nil

	case mutateDoneMsg:
		if msg.err != nil {
			m.statusMsg = msg.op + " failed: " + msg.err.Error()
		} else {
			m.statusMsg = msg.op + " ok"
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m canvasModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.syn.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.connectSource = ""
		m.deleteTarget = ""
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.NextNode):
		m.selectAdjacent(state, 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevNode):
		m.selectAdjacent(state, -1)
		return m, nil

	case key.Matches(msg, m.keys.Move):
		if state.Selected == "" || m.mode != modeNormal {
			return m, nil
		}
		m.applyMove(state, msg.String())
		m.dragging = true
		return m, nil

	case key.Matches(msg, m.keys.Commit):
		return m.handleCommit(state)

	case key.Matches(msg, m.keys.Connect):
		if m.mode == modeNormal && state.Selected != "" {
			m.mode = modeConnect
			m.connectSource = state.Selected
			m.statusMsg = "connect: pick the subprocess with tab, enter to link"
		}
		return m, nil

	case key.Matches(msg, m.keys.AddRoot):
		if m.mode == modeNormal {
			return m.openForm(nil, nil)
		}
		return m, nil

	case key.Matches(msg, m.keys.AddChild):
		if m.mode == modeNormal && state.Selected != "" {
			parent := state.Selected
			return m.openForm(&parent, nil)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.mode == modeNormal && state.Selected != "" {
			if i := state.NodeIndex(state.Selected); i >= 0 {
				return m.openForm(nil, state.Nodes[i].Record)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.mode != modeNormal || state.Selected == "" {
			return m, nil
		}
		// UX mirror of the server's leaf-only rule: refuse locally when
		// the local edge set shows subprocesses.
		if state.HasChildEdge(state.Selected) {
			m.statusMsg = "cannot delete a process that has subprocesses"
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.deleteTarget = state.Selected
		m.statusMsg = "delete selected process? enter to confirm, esc to cancel"
		return m, nil
	}

	return m, nil
}

func (m canvasModel) handleCommit(state canvas.State) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeConnect:
		source, target := m.connectSource, state.Selected
		m.mode = modeNormal
		m.connectSource = ""
		if target == "" || target == source {
			m.statusMsg = "connect cancelled"
			return m, nil
		}
		m.statusMsg = ""
		return m, func() tea.Msg {
			return mutateDoneMsg{op: "connect", err: m.syn.Connect(context.Background(), source, target)}
		}

	case modeConfirmDelete:
		target := m.deleteTarget
		m.mode = modeNormal
		m.deleteTarget = ""
		m.statusMsg = ""
		return m, func() tea.Msg {
			return mutateDoneMsg{op: "delete", err: m.syn.DeleteProcess(context.Background(), target)}
		}

	default:
		// Drop the dragged node: commit the locally applied position.
		if m.dragging && state.Selected != "" {
			m.dragging = false
			if i := state.NodeIndex(state.Selected); i >= 0 {
				pos := state.Nodes[i].Position
				m.syn.CommitPosition(context.Background(), state.Selected, pos.X, pos.Y)
				m.statusMsg = fmt.Sprintf("moved to (%.0f, %.0f)", pos.X, pos.Y)
			}
		}
		return m, nil
	}
}

// selectAdjacent cycles the selection through nodes in slice order.
func (m *canvasModel) selectAdjacent(state canvas.State, dir int) {
	if len(state.Nodes) == 0 {
		return
	}
	next := 0
	if i := state.NodeIndex(state.Selected); i >= 0 {
		next = (i + dir + len(state.Nodes)) % len(state.Nodes)
	}
	m.syn.Apply(canvas.SelectChange{ID: state.Nodes[next].ID})
}

// applyMove shifts the selected node one step; the delta is local-only
// until the drop commits it.
func (m *canvasModel) applyMove(state canvas.State, dirKey string) {
	i := state.NodeIndex(state.Selected)
	if i < 0 {
		return
	}
	pos := state.Nodes[i].Position
	switch dirKey {
	case "up":
		pos.Y -= moveStep
	case "down":
		pos.Y += moveStep
	case "left":
		pos.X -= moveStep
	case "right":
		pos.X += moveStep
	}
	m.syn.Apply(canvas.MoveChange{ID: state.Selected, To: pos})
}

func (m canvasModel) openForm(parentID *string, existing *domain.Process) (tea.Model, tea.Cmd) {
	data := &processFormData{
		Color: domain.SwatchColors[0],
		Type:  string(domain.ProcessManual),
	}
	if parentID != nil {
		data.ParentID = parentID
	}
	if existing != nil {
		data.ID = existing.ID
		data.Name = existing.Name
		data.Owner = existing.Owner
		data.Description = existing.Description
		data.SystemsAndTools = existing.SystemsAndTools
		data.Color = existing.Color
		data.Type = string(existing.Type)
	}
	m.formData = data
	m.form = newProcessForm(data)
	m.mode = modeForm
	m.statusMsg = ""
	return m, m.form.Init()
}

func (m canvasModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.mode = modeNormal
		m.form = nil
		m.formData = nil
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		data := m.formData
		m.mode = modeNormal
		m.form = nil
		m.formData = nil
		return m, m.submitFormCmd(data)
	}
	return m, cmd
}

func (m canvasModel) submitFormCmd(data *processFormData) tea.Cmd {
	areaID := m.areaID
	return func() tea.Msg {
		var err error
		if data.ID == "" {
			_, err = m.syn.CreateProcess(context.Background(), data.createRequest(areaID))
			return mutateDoneMsg{op: "create", err: err}
		}
		_, err = m.syn.UpdateProcess(context.Background(), data.ID, data.updateRequest())
		return mutateDoneMsg{op: "update", err: err}
	}
}

func (m canvasModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeForm && m.form != nil {
		return m.form.View()
	}
	return renderCanvas(m.syn.Snapshot(), m.width, m.height, m.statusMsg, m.mode == modeConnect)
}
