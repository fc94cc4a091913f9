package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	apperrors "github.com/zatekoja/symptom-triage/pkg/errors"
)

func TestUserAdapter_CreateAssignsIdentity(t *testing.T) {
	repo := NewUserAdapter(newTestStore(t))
	ctx := context.Background()

	a := &entities.User{Name: "Ada", Email: "ada@x.com", Role: entities.RolePatient}
	b := &entities.User{Name: "Ben", Email: "ben@x.com", Role: entities.RolePatient}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestUserAdapter_DuplicateEmailConflicts(t *testing.T) {
	repo := NewUserAdapter(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Name: "Ada", Email: "ada@x.com"}))

	err := repo.Create(ctx, &entities.User{Name: "Imposter", Email: "ada@x.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserAdapter_GetByEmailIsExactMatch(t *testing.T) {
	repo := NewUserAdapter(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Name: "Ada", Email: "Ada@x.com"}))

	found, err := repo.GetByEmail(ctx, "Ada@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ada", found.Name)

	// no normalization: a case variant is a different email
	missing, err := repo.GetByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserAdapter_GetByIDMissingIsNil(t *testing.T) {
	repo := NewUserAdapter(newTestStore(t))

	found, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, found)
}
