package database

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
	"github.com/zatekoja/symptom-triage/internal/store"
)

// ScheduleAdapter implements the ScheduleRepository interface over the
// record store
type ScheduleAdapter struct {
	store *store.Store
}

// NewScheduleAdapter creates a new schedule adapter
func NewScheduleAdapter(st *store.Store) repositories.ScheduleRepository {
	return &ScheduleAdapter{store: st}
}

// Get retrieves the schedule for a doctor, nil when absent
func (a *ScheduleAdapter) Get(ctx context.Context, doctorID string) (*entities.DoctorSchedule, error) {
	rows, err := a.store.Query(TableSchedules, func(r store.Row) bool {
		return r.String("doctor_id") == doctorID
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return scheduleFromRow(rows[0]), nil
}

// Save upserts the schedule: an existence check decides between update
// and insert, so the same doctor never gets a second row.
func (a *ScheduleAdapter) Save(ctx context.Context, schedule *entities.DoctorSchedule) error {
	existing, err := a.Get(ctx, schedule.DoctorID)
	if err != nil {
		return err
	}

	modes := map[string]any{
		"online": schedule.Modes.Online,
		"clinic": schedule.Modes.Clinic,
	}

	if existing != nil {
		_, err := a.store.Update(TableSchedules, func(r store.Row) bool {
			return r.String("doctor_id") == schedule.DoctorID
		}, store.Row{
			"consultation_modes": modes,
			"time_slots":         schedule.TimeSlots,
		})
		return err
	}

	_, err = a.store.Insert(TableSchedules, store.Row{
		"doctor_id":          schedule.DoctorID,
		"consultation_modes": modes,
		"time_slots":         schedule.TimeSlots,
	})
	return err
}

func scheduleFromRow(r store.Row) *entities.DoctorSchedule {
	modes := r.Map("consultation_modes")
	schedule := &entities.DoctorSchedule{
		DoctorID:  r.String("doctor_id"),
		TimeSlots: r.StringSlice("time_slots"),
	}
	if online, ok := modes["online"].(bool); ok {
		schedule.Modes.Online = online
	}
	if clinic, ok := modes["clinic"].(bool); ok {
		schedule.Modes.Clinic = clinic
	}
	return schedule
}
