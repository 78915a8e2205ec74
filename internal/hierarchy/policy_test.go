package hierarchy

import (
	"testing"

	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
	"github.com/GuilhermeVerrone/process-mapper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const areaA = "area-a"
const areaB = "area-b"

func TestValidateCreate_RequiresName(t *testing.T) {
	err := ValidateCreate(CreateInput{Name: "   ", AreaID: areaA}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestValidateCreate_RequiresArea(t *testing.T) {
	err := ValidateCreate(CreateInput{Name: "Onboarding"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestValidateCreate_UnknownParentRejected(t *testing.T) {
	missing := "no-such-id"
	err := ValidateCreate(CreateInput{Name: "Child", AreaID: areaA, ParentID: &missing}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestValidateCreate_ParentInOtherAreaRejected(t *testing.T) {
	parent := testutil.NewTestProcess(areaB, "Foreign Parent")
	err := ValidateCreate(CreateInput{Name: "Child", AreaID: areaA, ParentID: &parent.ID},
		[]*domain.Process{parent})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestValidateCreate_ValidWithParent(t *testing.T) {
	parent := testutil.NewTestProcess(areaA, "Parent")
	err := ValidateCreate(CreateInput{Name: "Child", AreaID: areaA, ParentID: &parent.ID},
		[]*domain.Process{parent})
	assert.NoError(t, err)
}

func TestValidateDelete_LeafAllowed(t *testing.T) {
	parent := testutil.NewTestProcess(areaA, "Parent")
	child := testutil.NewTestProcess(areaA, "Child", testutil.WithParentID(parent.ID))

	assert.NoError(t, ValidateDelete(child.ID, []*domain.Process{parent, child}))
}

func TestValidateDelete_ParentBlocked(t *testing.T) {
	parent := testutil.NewTestProcess(areaA, "Parent")
	child := testutil.NewTestProcess(areaA, "Child", testutil.WithParentID(parent.ID))

	err := ValidateDelete(parent.ID, []*domain.Process{parent, child})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestValidateDelete_UnblockedAfterChildrenRemoved(t *testing.T) {
	parent := testutil.NewTestProcess(areaA, "Parent")
	child := testutil.NewTestProcess(areaA, "Child", testutil.WithParentID(parent.ID))

	require.Error(t, ValidateDelete(parent.ID, []*domain.Process{parent, child}))
	assert.NoError(t, ValidateDelete(parent.ID, []*domain.Process{parent}))
}

func TestValidateChildCount(t *testing.T) {
	assert.NoError(t, ValidateChildCount(0))

	err := ValidateChildCount(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestValidateLink_SelfRejected(t *testing.T) {
	p := testutil.NewTestProcess(areaA, "P")
	err := ValidateLink(p.ID, p.ID, []*domain.Process{p})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestValidateLink_UnknownEndpointsRejected(t *testing.T) {
	p := testutil.NewTestProcess(areaA, "P")
	all := []*domain.Process{p}

	assert.ErrorIs(t, ValidateLink("ghost", p.ID, all), repository.ErrValidation)
	assert.ErrorIs(t, ValidateLink(p.ID, "ghost", all), repository.ErrValidation)
}

func TestValidateLink_CrossAreaRejected(t *testing.T) {
	a := testutil.NewTestProcess(areaA, "A")
	b := testutil.NewTestProcess(areaB, "B")

	err := ValidateLink(a.ID, b.ID, []*domain.Process{a, b})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestValidateLink_TargetWithParentRejected(t *testing.T) {
	root := testutil.NewTestProcess(areaA, "Root")
	other := testutil.NewTestProcess(areaA, "Other")
	child := testutil.NewTestProcess(areaA, "Child", testutil.WithParentID(root.ID))

	err := ValidateLink(other.ID, child.ID, []*domain.Process{root, other, child})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestValidateLink_RelinkToSameParentAllowed(t *testing.T) {
	root := testutil.NewTestProcess(areaA, "Root")
	child := testutil.NewTestProcess(areaA, "Child", testutil.WithParentID(root.ID))

	assert.NoError(t, ValidateLink(root.ID, child.ID, []*domain.Process{root, child}))
}

func TestValidateLink_CycleRejected(t *testing.T) {
	a := testutil.NewTestProcess(areaA, "A")
	b := testutil.NewTestProcess(areaA, "B", testutil.WithParentID(a.ID))
	c := testutil.NewTestProcess(areaA, "C", testutil.WithParentID(b.ID))
	all := []*domain.Process{a, b, c}

	// Linking ancestor a under descendant c would close the loop a->b->c->a.
	err := ValidateLink(c.ID, a.ID, all)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestValidateLink_ValidConnect(t *testing.T) {
	root := testutil.NewTestProcess(areaA, "Root")
	orphan := testutil.NewTestProcess(areaA, "Orphan")

	assert.NoError(t, ValidateLink(root.ID, orphan.ID, []*domain.Process{root, orphan}))
}

func TestIsAncestor_TerminatesOnCorruptCycle(t *testing.T) {
	a := testutil.NewTestProcess(areaA, "A")
	b := testutil.NewTestProcess(areaA, "B")
	a.ParentID = &b.ID
	b.ParentID = &a.ID

	assert.False(t, isAncestor("elsewhere", a.ID, []*domain.Process{a, b}))
}
