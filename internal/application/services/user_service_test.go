package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptom-triage/internal/adapters/database"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	apperrors "github.com/zatekoja/symptom-triage/pkg/errors"
)

func TestRegister_AssignsIncreasingIdentities(t *testing.T) {
	svc := NewUserService(database.NewUserAdapter(newTestStore(t)))
	ctx := context.Background()

	var last int64
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		user, err := svc.Register(ctx, "User", email, "secret", entities.RolePatient, "")
		require.NoError(t, err)
		assert.Greater(t, user.ID, last)
		last = user.ID
	}
}

func TestRegister_DuplicateEmailFailsAndLeavesTableUnchanged(t *testing.T) {
	repo := database.NewUserAdapter(newTestStore(t))
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@x.com", "secret", entities.RolePatient, "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "ada@x.com", "other", entities.RolePatient, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	repo := database.NewUserAdapter(newTestStore(t))
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@x.com", "secret", entities.RolePatient, "")
	require.NoError(t, err)

	stored, err := repo.GetByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestLogin_ReturnsUserForCorrectCredentials(t *testing.T) {
	svc := NewUserService(database.NewUserAdapter(newTestStore(t)))
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ada", "ada@x.com", "secret", entities.RolePatient, "")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "ada@x.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "Ada", user.Name)
}

func TestLogin_MismatchIsNilNotError(t *testing.T) {
	svc := NewUserService(database.NewUserAdapter(newTestStore(t)))
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@x.com", "secret", entities.RolePatient, "")
	require.NoError(t, err)

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "ada@x.com", "nope"},
		{"wrong email", "eve@x.com", "secret"},
		{"both wrong", "eve@x.com", "nope"},
		{"case variant email", "Ada@x.com", "secret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tc.email, tc.password)
			require.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}
