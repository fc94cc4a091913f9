package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

func TestAppointmentAdapter_ListByDoctorDateDescending(t *testing.T) {
	repo := NewAppointmentAdapter(newTestStore(t))
	ctx := context.Background()

	for _, date := range []string{"2026-03-01", "2026-03-15", "2026-03-08"} {
		require.NoError(t, repo.Create(ctx, &entities.Appointment{
			DoctorID:  "doc-1",
			PatientID: 7,
			Date:      date,
			Status:    entities.AppointmentStatusConfirmed,
		}))
	}
	// another doctor's appointment must not appear
	require.NoError(t, repo.Create(ctx, &entities.Appointment{
		DoctorID:  "doc-2",
		PatientID: 7,
		Date:      "2026-03-20",
		Status:    entities.AppointmentStatusConfirmed,
	}))

	list, err := repo.ListByDoctor(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-03-15", list[0].Date)
	assert.Equal(t, "2026-03-08", list[1].Date)
	assert.Equal(t, "2026-03-01", list[2].Date)
}

func TestAppointmentAdapter_ListByPatient(t *testing.T) {
	repo := NewAppointmentAdapter(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Appointment{DoctorID: "doc-1", PatientID: 1, Date: "2026-03-01"}))
	require.NoError(t, repo.Create(ctx, &entities.Appointment{DoctorID: "doc-1", PatientID: 2, Date: "2026-03-02"}))

	list, err := repo.ListByPatient(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].PatientID)
}

func TestAppointmentAdapter_UpdateStatus(t *testing.T) {
	repo := NewAppointmentAdapter(newTestStore(t))
	ctx := context.Background()

	appt := &entities.Appointment{DoctorID: "doc-1", PatientID: 1, Date: "2026-03-01", Status: entities.AppointmentStatusConfirmed}
	require.NoError(t, repo.Create(ctx, appt))
	require.NoError(t, repo.UpdateStatus(ctx, appt.ID, entities.AppointmentStatusCompleted))

	list, err := repo.ListByDoctor(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entities.AppointmentStatusCompleted, list[0].Status)
}
