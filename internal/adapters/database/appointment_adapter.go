package database

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
	"github.com/zatekoja/symptom-triage/internal/store"
)

// AppointmentAdapter implements the AppointmentRepository interface over
// the record store
type AppointmentAdapter struct {
	store *store.Store
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(st *store.Store) repositories.AppointmentRepository {
	return &AppointmentAdapter{store: st}
}

// Create inserts a new appointment, assigning its identity
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	row := store.Row{
		"doctor_id":         appointment.DoctorID,
		"patient_id":        appointment.PatientID,
		"patient_name":      appointment.PatientName,
		"date":              appointment.Date,
		"time":              appointment.Time,
		"type":              string(appointment.Type),
		"payment_status":    string(appointment.PaymentStatus),
		"payment_method":    string(appointment.PaymentMethod),
		"amount":            appointment.Amount,
		"status":            string(appointment.Status),
		"condition_summary": appointment.ConditionSummary,
	}

	id, err := a.store.Insert(TableAppointments, row)
	if err != nil {
		return err
	}
	appointment.ID = id
	return nil
}

// UpdateStatus sets the status of an appointment. Unknown ids are a
// no-op, matching the store's zero-match update semantics.
func (a *AppointmentAdapter) UpdateStatus(ctx context.Context, id int64, status entities.AppointmentStatus) error {
	_, err := a.store.Update(TableAppointments, func(r store.Row) bool {
		return r.Int("id") == id
	}, store.Row{"status": string(status)})
	return err
}

// ListByDoctor retrieves a doctor's appointments, date descending
func (a *AppointmentAdapter) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	rows, err := a.store.Query(TableAppointments, func(r store.Row) bool {
		return r.String("doctor_id") == doctorID
	}, &store.OrderBy{Column: "date", Desc: true})
	if err != nil {
		return nil, err
	}
	return appointmentsFromRows(rows), nil
}

// ListByPatient retrieves a patient's appointments, date descending
func (a *AppointmentAdapter) ListByPatient(ctx context.Context, patientID int64) ([]*entities.Appointment, error) {
	rows, err := a.store.Query(TableAppointments, func(r store.Row) bool {
		return r.Int("patient_id") == patientID
	}, &store.OrderBy{Column: "date", Desc: true})
	if err != nil {
		return nil, err
	}
	return appointmentsFromRows(rows), nil
}

func appointmentsFromRows(rows []store.Row) []*entities.Appointment {
	appointments := make([]*entities.Appointment, 0, len(rows))
	for _, r := range rows {
		appointments = append(appointments, appointmentFromRow(r))
	}
	return appointments
}

func appointmentFromRow(r store.Row) *entities.Appointment {
	return &entities.Appointment{
		ID:               r.Int("id"),
		DoctorID:         r.String("doctor_id"),
		PatientID:        r.Int("patient_id"),
		PatientName:      r.String("patient_name"),
		Date:             r.String("date"),
		Time:             r.String("time"),
		Type:             entities.AppointmentType(r.String("type")),
		PaymentStatus:    entities.PaymentStatus(r.String("payment_status")),
		PaymentMethod:    entities.PaymentMethod(r.String("payment_method")),
		Amount:           r.String("amount"),
		Status:           entities.AppointmentStatus(r.String("status")),
		ConditionSummary: r.String("condition_summary"),
	}
}
