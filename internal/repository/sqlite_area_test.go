package repository

import (
	"context"
	"testing"

	"github.com/GuilhermeVerrone/process-mapper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteAreaRepo(db)

	area := testutil.NewTestArea("Recursos Humanos", testutil.WithAreaOwner("Ana Silva"))
	require.NoError(t, repo.Create(ctx, area))

	got, err := repo.GetByID(ctx, area.ID)
	require.NoError(t, err)
	assert.Equal(t, "Recursos Humanos", got.Name)
	assert.Equal(t, "Ana Silva", got.Owner)
}

func TestAreaRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAreaRepo(db)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAreaRepo_ListOrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteAreaRepo(db)

	require.NoError(t, repo.Create(ctx, testutil.NewTestArea("Vendas")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestArea("Financeiro")))

	areas, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "Financeiro", areas[0].Name)
	assert.Equal(t, "Vendas", areas[1].Name)
}

func TestAreaRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteAreaRepo(db)

	area := testutil.NewTestArea("Operacoes")
	require.NoError(t, repo.Create(ctx, area))

	area.Name = "Operações"
	area.Owner = "Bruno"
	require.NoError(t, repo.Update(ctx, area))

	got, err := repo.GetByID(ctx, area.ID)
	require.NoError(t, err)
	assert.Equal(t, "Operações", got.Name)
	assert.Equal(t, "Bruno", got.Owner)
}

func TestAreaRepo_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteAreaRepo(db)

	ghost := testutil.NewTestArea("Ghost")
	assert.ErrorIs(t, repo.Update(context.Background(), ghost), ErrNotFound)
}

func TestAreaRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteAreaRepo(db)

	area := testutil.NewTestArea("Temp")
	require.NoError(t, repo.Create(ctx, area))
	require.NoError(t, repo.Delete(ctx, area.ID))

	_, err := repo.GetByID(ctx, area.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, area.ID), ErrNotFound)
}
