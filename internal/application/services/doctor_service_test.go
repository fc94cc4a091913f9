package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptom-triage/internal/adapters/database"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

func newDoctorService(t *testing.T) *DoctorService {
	t.Helper()
	st := newTestStore(t)
	return NewDoctorService(database.NewDoctorAdapter(st), database.NewScheduleAdapter(st))
}

func TestOnboard_FillsDefaults(t *testing.T) {
	svc := newDoctorService(t)
	ctx := context.Background()

	id, err := svc.Onboard(ctx, &entities.Doctor{
		Name:           "Dr. New Entrant",
		Specialization: "Cardiologist",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	created, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, 4.5, created.Rating)
	assert.Equal(t, "2.0 km", created.Distance)
	assert.Contains(t, created.ImageURL, "dicebear")
	assert.Equal(t, []string{"Cardiologist"}, created.Specialties)
	assert.True(t, created.Available)
	assert.False(t, created.Verified)
}

func TestOnboard_KeepsProvidedFields(t *testing.T) {
	svc := newDoctorService(t)
	ctx := context.Background()

	id, err := svc.Onboard(ctx, &entities.Doctor{
		Name:           "Dr. Seasoned",
		Specialization: "Neurologist",
		Rating:         3.9,
		Specialties:    []string{"Migraine", "Epilepsy"},
	})
	require.NoError(t, err)

	created, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3.9, created.Rating)
	assert.Equal(t, []string{"Migraine", "Epilepsy"}, created.Specialties)
}

func TestOnboard_RequiresNameAndSpecialization(t *testing.T) {
	svc := newDoctorService(t)
	ctx := context.Background()

	_, err := svc.Onboard(ctx, &entities.Doctor{Specialization: "Cardiologist"})
	assert.Error(t, err)

	_, err = svc.Onboard(ctx, &entities.Doctor{Name: "Dr. Nameless"})
	assert.Error(t, err)
}

func TestVerify_FlipsFlag(t *testing.T) {
	svc := newDoctorService(t)
	ctx := context.Background()

	id, err := svc.Onboard(ctx, &entities.Doctor{Name: "Dr. A", Specialization: "Cardiologist"})
	require.NoError(t, err)
	require.NoError(t, svc.Verify(ctx, id))

	created, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, created.Verified)
}

func TestSchedule_DefaultsWhenNeverSaved(t *testing.T) {
	svc := newDoctorService(t)

	schedule, err := svc.Schedule(context.Background(), "doc-unknown")
	require.NoError(t, err)
	require.NotNil(t, schedule)
	assert.True(t, schedule.Modes.Online)
	assert.True(t, schedule.Modes.Clinic)
	assert.Equal(t, DefaultTimeSlots, schedule.TimeSlots)
}

func TestSaveSchedule_DedupesAndSortsSlots(t *testing.T) {
	svc := newDoctorService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveSchedule(ctx, "doc-1",
		entities.ConsultationModes{Online: true, Clinic: false},
		[]string{"14:00", "09:00", "14:00", "11:00"},
	))

	schedule, err := svc.Schedule(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "14:00"}, schedule.TimeSlots)
	assert.True(t, schedule.Modes.Online)
	assert.False(t, schedule.Modes.Clinic)
}
