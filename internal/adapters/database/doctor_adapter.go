package database

import (
	"context"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
	"github.com/zatekoja/symptom-triage/internal/store"
)

// DoctorAdapter implements the DoctorRepository interface over the record store
type DoctorAdapter struct {
	store *store.Store
}

// NewDoctorAdapter creates a new doctor adapter
func NewDoctorAdapter(st *store.Store) repositories.DoctorRepository {
	return &DoctorAdapter{store: st}
}

// Create inserts a new doctor. Specialties are held natively as a JSON
// array inside the row, so order and content round-trip untouched.
// CompatibilityScore is ranking output and rests at 0.
func (a *DoctorAdapter) Create(ctx context.Context, doctor *entities.Doctor) error {
	row := store.Row{
		"id":                  doctor.ID,
		"name":                doctor.Name,
		"specialization":      doctor.Specialization,
		"experience":          doctor.Experience,
		"rating":              doctor.Rating,
		"distance":            doctor.Distance,
		"image_url":           doctor.ImageURL,
		"available":           doctor.Available,
		"bio":                 doctor.Bio,
		"specialties":         doctor.Specialties,
		"verified":            doctor.Verified,
		"compatibility_score": 0.0,
	}

	_, err := a.store.Insert(TableDoctors, row)
	return err
}

// GetAll retrieves every doctor in insertion order
func (a *DoctorAdapter) GetAll(ctx context.Context) ([]*entities.Doctor, error) {
	rows, err := a.store.Query(TableDoctors, nil, nil)
	if err != nil {
		return nil, err
	}

	doctors := make([]*entities.Doctor, 0, len(rows))
	for _, r := range rows {
		doctors = append(doctors, doctorFromRow(r))
	}
	return doctors, nil
}

// GetByID retrieves a doctor by ID, nil when absent
func (a *DoctorAdapter) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	rows, err := a.store.Query(TableDoctors, func(r store.Row) bool {
		return r.String("id") == id
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return doctorFromRow(rows[0]), nil
}

// SetVerified updates the verification flag
func (a *DoctorAdapter) SetVerified(ctx context.Context, id string, verified bool) error {
	_, err := a.store.Update(TableDoctors, func(r store.Row) bool {
		return r.String("id") == id
	}, store.Row{"verified": verified})
	return err
}

// UpdateBio updates the doctor's bio text
func (a *DoctorAdapter) UpdateBio(ctx context.Context, id string, bio string) error {
	_, err := a.store.Update(TableDoctors, func(r store.Row) bool {
		return r.String("id") == id
	}, store.Row{"bio": bio})
	return err
}

// Count returns the number of doctor rows
func (a *DoctorAdapter) Count(ctx context.Context) (int, error) {
	rows, err := a.store.Query(TableDoctors, nil, nil)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func doctorFromRow(r store.Row) *entities.Doctor {
	return &entities.Doctor{
		ID:                 r.String("id"),
		Name:               r.String("name"),
		Specialization:     r.String("specialization"),
		Experience:         r.String("experience"),
		Rating:             r.Float("rating"),
		Distance:           r.String("distance"),
		ImageURL:           r.String("image_url"),
		Available:          r.Bool("available"),
		Bio:                r.String("bio"),
		Specialties:        r.StringSlice("specialties"),
		Verified:           r.Bool("verified"),
		CompatibilityScore: r.Float("compatibility_score"),
	}
}
