package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/GuilhermeVerrone/process-mapper/internal/canvas"
	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
	"github.com/GuilhermeVerrone/process-mapper/internal/service"
	"github.com/GuilhermeVerrone/process-mapper/internal/session"
	"github.com/GuilhermeVerrone/process-mapper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. The session file lives in the test's temp dir.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	processSvc := service.NewProcessService(repository.NewSQLiteProcessRepo(db))

	return &App{
		Areas:     service.NewAreaService(repository.NewSQLiteAreaRepo(db), testutil.NewTestUoW(db)),
		Processes: processSvc,
		Auth: service.NewAuthService(
			repository.NewSQLiteUserRepo(db),
			repository.NewSQLiteAuthSessionRepo(db),
		),
		Store:          processSvc,
		SessionPath:    filepath.Join(t.TempDir(), "session.json"),
		CanvasObserver: canvas.NoopObserver{},
		IsInteractive:  func() bool { return false },
	}
}

// loginTestUser registers an account and persists a live session so that
// authenticated commands pass the credential guard.
func loginTestUser(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()

	_, err := app.Auth.Register(ctx, contract.RegisterRequest{
		Name: "Admin User", Email: "admin@example.com", Password: "123456",
	})
	require.NoError(t, err)
	resp, err := app.Auth.Login(ctx, contract.LoginRequest{
		Email: "admin@example.com", Password: "123456",
	})
	require.NoError(t, err)
	require.NoError(t, session.Save(app.SessionPath, &session.Session{
		Token:    resp.Token,
		UserID:   resp.User.ID,
		UserName: resp.User.Name,
	}))
}

// executeCmd runs a cobra command and captures its error stream.
func executeCmd(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	return root.Execute()
}

func TestAreaAdd_RequiresLogin(t *testing.T) {
	app := testApp(t)

	err := executeCmd(t, app, "area", "add", "--name", "RH")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestAreaAddAndList(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)

	require.NoError(t, executeCmd(t, app, "area", "add", "--name", "Recursos Humanos", "--owner", "Ana Silva"))

	areas, err := app.Areas.List(context.Background())
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "Recursos Humanos", areas[0].Name)

	assert.NoError(t, executeCmd(t, app, "area", "list"))
}

func TestAreaUpdate_RenameKeepsOwner(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)
	ctx := context.Background()

	area, err := app.Areas.Create(ctx, contract.CreateAreaRequest{Name: "Vendas", Owner: "Ana"})
	require.NoError(t, err)

	require.NoError(t, executeCmd(t, app, "area", "update", area.ID, "--name", "Comercial"))

	updated, err := app.Areas.GetByID(ctx, area.ID)
	require.NoError(t, err)
	assert.Equal(t, "Comercial", updated.Name)
	assert.Equal(t, "Ana", updated.Owner, "rename must not touch the owner")
}

func TestProcessLifecycleViaCommands(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)
	ctx := context.Background()

	area, err := app.Areas.Create(ctx, contract.CreateAreaRequest{Name: "RH"})
	require.NoError(t, err)

	require.NoError(t, executeCmd(t, app, "process", "add",
		"--area", area.ID, "--name", "Contratação", "--owner", "Carlos", "--x", "50", "--y", "50"))

	processes, err := app.Processes.ListByArea(ctx, area.ID)
	require.NoError(t, err)
	require.Len(t, processes, 1)
	parent := processes[0]
	assert.Equal(t, 50.0, parent.Position.X)

	require.NoError(t, executeCmd(t, app, "process", "add",
		"--area", area.ID, "--name", "Entrevista", "--parent", parent.ID))

	// Deleting the parent is refused while the child exists.
	err = executeCmd(t, app, "process", "remove", parent.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConflict)

	processes, err = app.Processes.ListByArea(ctx, area.ID)
	require.NoError(t, err)
	require.Len(t, processes, 2)
	var childID string
	for _, p := range processes {
		if p.ID != parent.ID {
			childID = p.ID
		}
	}

	require.NoError(t, executeCmd(t, app, "process", "remove", childID))
	require.NoError(t, executeCmd(t, app, "process", "remove", parent.ID))
}

func TestProcessUpdate_OnlyChangedFlagsApply(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)
	ctx := context.Background()

	area, err := app.Areas.Create(ctx, contract.CreateAreaRequest{Name: "RH"})
	require.NoError(t, err)
	p, err := app.Processes.Create(ctx, contract.CreateProcessRequest{
		Name: "Original", AreaID: area.ID, Owner: "Carlos",
	})
	require.NoError(t, err)

	require.NoError(t, executeCmd(t, app, "process", "update", p.ID, "--color", "#fff2cc"))

	got, err := app.Processes.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "#fff2cc", got.Color)
	assert.Equal(t, "Original", got.Name)
	assert.Equal(t, "Carlos", got.Owner)
}

func TestProcessLinkAndMove(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)
	ctx := context.Background()

	area, err := app.Areas.Create(ctx, contract.CreateAreaRequest{Name: "RH"})
	require.NoError(t, err)
	root, err := app.Processes.Create(ctx, contract.CreateProcessRequest{Name: "Root", AreaID: area.ID})
	require.NoError(t, err)
	orphan, err := app.Processes.Create(ctx, contract.CreateProcessRequest{Name: "Orphan", AreaID: area.ID})
	require.NoError(t, err)

	require.NoError(t, executeCmd(t, app, "process", "link", orphan.ID, "--parent", root.ID))
	require.NoError(t, executeCmd(t, app, "process", "move", orphan.ID, "--x", "300", "--y", "150"))

	got, err := app.Processes.GetByID(ctx, orphan.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, root.ID, *got.ParentID)
	assert.Equal(t, 300.0, got.Position.X)
	assert.Equal(t, 150.0, got.Position.Y)
}

func TestCanvasCmd_NonInteractiveRefused(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)

	area, err := app.Areas.Create(context.Background(), contract.CreateAreaRequest{Name: "RH"})
	require.NoError(t, err)

	err = executeCmd(t, app, "canvas", "--area", area.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestLogout_ClearsSession(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)

	require.NoError(t, executeCmd(t, app, "logout"))

	err := executeCmd(t, app, "area", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestWhoami_ExpiredTokenClearsSession(t *testing.T) {
	app := testApp(t)
	loginTestUser(t, app)

	// Invalidate the token server-side but leave the file behind.
	s, err := session.Load(app.SessionPath)
	require.NoError(t, err)
	require.NoError(t, app.Auth.Logout(context.Background(), s.Token))

	err = executeCmd(t, app, "whoami")
	require.Error(t, err)

	// The stale file was torn down.
	s, err = session.Load(app.SessionPath)
	require.NoError(t, err)
	assert.False(t, s.Active())
}

func TestSeedCmd_CreatesDemoData(t *testing.T) {
	app := testApp(t)

	require.NoError(t, executeCmd(t, app, "seed"))

	ctx := context.Background()
	areas, err := app.Areas.List(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "Recursos Humanos", areas[0].Name)

	processes, err := app.Processes.ListByArea(ctx, areas[0].ID)
	require.NoError(t, err)
	assert.Len(t, processes, 2)

	_, err = app.Auth.Login(ctx, contract.LoginRequest{Email: "admin@example.com", Password: "123456"})
	assert.NoError(t, err)
}
