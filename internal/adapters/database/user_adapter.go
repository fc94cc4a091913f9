package database

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
	"github.com/zatekoja/symptom-triage/internal/store"
)

// UserAdapter implements the UserRepository interface over the record store
type UserAdapter struct {
	store *store.Store
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(st *store.Store) repositories.UserRepository {
	return &UserAdapter{store: st}
}

// Create inserts a new user. The store assigns the identity and rejects
// duplicate emails with a conflict error.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	row := store.Row{
		"name":      user.Name,
		"email":     user.Email,
		"password":  user.Password,
		"role":      string(user.Role),
		"doctor_id": user.DoctorID,
		"verified":  user.Verified,
	}

	id, err := a.store.Insert(TableUsers, row)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by ID, nil when absent
func (a *UserAdapter) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	rows, err := a.store.Query(TableUsers, func(r store.Row) bool {
		return r.Int("id") == id
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return userFromRow(rows[0]), nil
}

// GetByEmail retrieves a user by byte-exact email match, nil when absent
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	rows, err := a.store.Query(TableUsers, func(r store.Row) bool {
		return r.String("email") == email
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return userFromRow(rows[0]), nil
}

// Count returns the number of user rows
func (a *UserAdapter) Count(ctx context.Context) (int, error) {
	rows, err := a.store.Query(TableUsers, nil, nil)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func userFromRow(r store.Row) *entities.User {
	return &entities.User{
		ID:       r.Int("id"),
		Name:     r.String("name"),
		Email:    r.String("email"),
		Password: r.String("password"),
		Role:     entities.Role(r.String("role")),
		DoctorID: r.String("doctor_id"),
		Verified: r.Bool("verified"),
	}
}
