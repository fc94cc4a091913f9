package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

func TestDoctorAdapter_SpecialtiesRoundTrip(t *testing.T) {
	repo := NewDoctorAdapter(newTestStore(t))
	ctx := context.Background()

	specialties := []string{"Psoriasis", "Eczema", "Acne"}
	require.NoError(t, repo.Create(ctx, &entities.Doctor{
		ID:             "doc-1",
		Name:           "Dr. Ada",
		Specialization: "Dermatologist",
		Specialties:    specialties,
	}))

	found, err := repo.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, specialties, found.Specialties)
}

func TestDoctorAdapter_CompatibilityScoreRestsAtZero(t *testing.T) {
	repo := NewDoctorAdapter(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Doctor{
		ID:                 "doc-1",
		Name:               "Dr. Ada",
		CompatibilityScore: 85,
	}))

	found, err := repo.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Zero(t, found.CompatibilityScore)
}

func TestDoctorAdapter_SetVerified(t *testing.T) {
	repo := NewDoctorAdapter(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Doctor{ID: "doc-1", Name: "Dr. Ada"}))
	require.NoError(t, repo.SetVerified(ctx, "doc-1", true))

	found, err := repo.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, found.Verified)
}

func TestDoctorAdapter_UpdateBio(t *testing.T) {
	repo := NewDoctorAdapter(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Doctor{ID: "doc-1", Name: "Dr. Ada"}))
	require.NoError(t, repo.UpdateBio(ctx, "doc-1", "updated bio"))

	found, err := repo.GetByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "updated bio", found.Bio)
}

func TestDoctorAdapter_GetAllKeepsInsertionOrder(t *testing.T) {
	repo := NewDoctorAdapter(newTestStore(t))
	ctx := context.Background()

	for _, id := range []string{"doc-3", "doc-1", "doc-2"} {
		require.NoError(t, repo.Create(ctx, &entities.Doctor{ID: id, Name: "Dr. " + id}))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "doc-3", all[0].ID)
	assert.Equal(t, "doc-1", all[1].ID)
	assert.Equal(t, "doc-2", all[2].ID)
}
