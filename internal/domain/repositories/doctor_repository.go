package repositories

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

// DoctorRepository defines the interface for doctor data operations
type DoctorRepository interface {
	// Create inserts a new doctor
	Create(ctx context.Context, doctor *entities.Doctor) error

	// GetAll retrieves every doctor
	GetAll(ctx context.Context) ([]*entities.Doctor, error)

	// GetByID retrieves a doctor by ID, nil when absent
	GetByID(ctx context.Context, id string) (*entities.Doctor, error)

	// SetVerified updates the verification flag
	SetVerified(ctx context.Context, id string, verified bool) error

	// UpdateBio updates the doctor's bio text
	UpdateBio(ctx context.Context, id string, bio string) error

	// Count returns the number of doctor rows
	Count(ctx context.Context) (int, error)
}
