package repositories

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	// Create inserts a new appointment, assigning its identity
	Create(ctx context.Context, appointment *entities.Appointment) error

	// UpdateStatus sets the status of an appointment
	UpdateStatus(ctx context.Context, id int64, status entities.AppointmentStatus) error

	// ListByDoctor retrieves a doctor's appointments, date descending
	ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error)

	// ListByPatient retrieves a patient's appointments, date descending
	ListByPatient(ctx context.Context, patientID int64) ([]*entities.Appointment, error)
}
