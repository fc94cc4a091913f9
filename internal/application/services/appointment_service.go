package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
)

// AppointmentService handles appointment booking and status updates
type AppointmentService struct {
	repo repositories.AppointmentRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// Book creates an appointment at checkout. Status always starts
// confirmed. PaymentStatus is derived once here and never recomputed:
// pending for pay_later, paid for every other method.
func (s *AppointmentService) Book(ctx context.Context, appointment *entities.Appointment) error {
	if appointment.DoctorID == "" {
		return fmt.Errorf("doctor id is required")
	}
	if appointment.PatientID == 0 {
		return fmt.Errorf("patient id is required")
	}

	appointment.Status = entities.AppointmentStatusConfirmed
	if appointment.PaymentMethod == entities.PaymentMethodPayLater {
		appointment.PaymentStatus = entities.PaymentStatusPending
	} else {
		appointment.PaymentStatus = entities.PaymentStatusPaid
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return err
	}

	log.Info().
		Int64("appointment_id", appointment.ID).
		Str("doctor_id", appointment.DoctorID).
		Str("payment_status", string(appointment.PaymentStatus)).
		Msg("booked appointment")
	return nil
}

// UpdateStatus records a status change by the owning doctor. The target
// must be a known status, but the prior state is not checked: writes
// from a terminal state are accepted, matching the observed behavior of
// the triage flow.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status entities.AppointmentStatus) error {
	switch status {
	case entities.AppointmentStatusConfirmed, entities.AppointmentStatusCompleted, entities.AppointmentStatusCancelled:
	default:
		return fmt.Errorf("unknown appointment status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// ListForDoctor retrieves a doctor's appointments, date descending
func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// ListForPatient retrieves a patient's appointments, date descending
func (s *AppointmentService) ListForPatient(ctx context.Context, patientID int64) ([]*entities.Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
