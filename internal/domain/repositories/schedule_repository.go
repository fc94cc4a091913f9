package repositories

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

// ScheduleRepository defines the interface for doctor schedule operations
type ScheduleRepository interface {
	// Get retrieves the schedule for a doctor, nil when absent
	Get(ctx context.Context, doctorID string) (*entities.DoctorSchedule, error)

	// Save upserts the schedule keyed on doctor_id: updates the existing
	// row when one exists, inserts otherwise. Never creates a second row
	// for the same doctor.
	Save(ctx context.Context, schedule *entities.DoctorSchedule) error
}
