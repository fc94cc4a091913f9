package repositories

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create inserts a new user, assigning its identity. Fails with a
	// conflict error when the email is already present.
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID, nil when absent
	GetByID(ctx context.Context, id int64) (*entities.User, error)

	// GetByEmail retrieves a user by exact email match, nil when absent
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// Count returns the number of user rows
	Count(ctx context.Context) (int, error)
}
