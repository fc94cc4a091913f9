package services

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
)

// Defaults applied to onboarded doctors when the caller omits a field.
// New entrants start with a high rating so they are not buried below
// the seeded roster.
const (
	defaultOnboardRating = 4.5
	defaultDistance      = "2.0 km"
)

// DefaultTimeSlots is the slot list given to doctors without a saved
// schedule. 24-hour strings so lexicographic order is chronological.
var DefaultTimeSlots = []string{"09:00", "10:00", "11:00", "14:00", "16:00", "18:00"}

// DoctorService handles doctor onboarding, lookup and schedule management
type DoctorService struct {
	repo      repositories.DoctorRepository
	schedules repositories.ScheduleRepository
}

// NewDoctorService creates a new doctor service
func NewDoctorService(repo repositories.DoctorRepository, schedules repositories.ScheduleRepository) *DoctorService {
	return &DoctorService{repo: repo, schedules: schedules}
}

// GetAll retrieves every doctor
func (s *DoctorService) GetAll(ctx context.Context) ([]*entities.Doctor, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a doctor by ID, nil when absent
func (s *DoctorService) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// Onboard creates a doctor from a partial record, filling omitted
// fields: a generated id token, rating 4.5, a placeholder distance, a
// generated avatar keyed by name, and specialties defaulting to the
// bare specialization. Onboarded doctors start unverified.
func (s *DoctorService) Onboard(ctx context.Context, doctor *entities.Doctor) (string, error) {
	if doctor.Name == "" {
		return "", fmt.Errorf("doctor name is required")
	}
	if doctor.Specialization == "" {
		return "", fmt.Errorf("doctor specialization is required")
	}

	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}
	if doctor.Rating == 0 {
		doctor.Rating = defaultOnboardRating
	}
	if doctor.Distance == "" {
		doctor.Distance = defaultDistance
	}
	if doctor.ImageURL == "" {
		doctor.ImageURL = avatarURL(doctor.Name)
	}
	if len(doctor.Specialties) == 0 {
		doctor.Specialties = []string{doctor.Specialization}
	}
	doctor.Available = true
	doctor.Verified = false
	doctor.CompatibilityScore = 0

	if err := s.repo.Create(ctx, doctor); err != nil {
		return "", err
	}

	log.Info().Str("doctor_id", doctor.ID).Str("specialization", doctor.Specialization).Msg("onboarded doctor")
	return doctor.ID, nil
}

// Verify marks a doctor as verified
func (s *DoctorService) Verify(ctx context.Context, id string) error {
	return s.repo.SetVerified(ctx, id, true)
}

// UpdateBio replaces a doctor's bio text
func (s *DoctorService) UpdateBio(ctx context.Context, id string, bio string) error {
	return s.repo.UpdateBio(ctx, id, bio)
}

// Schedule returns the doctor's saved schedule, or safe defaults
// (both modes on, the default slot list) when none was ever saved.
func (s *DoctorService) Schedule(ctx context.Context, doctorID string) (*entities.DoctorSchedule, error) {
	schedule, err := s.schedules.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return &entities.DoctorSchedule{
			DoctorID:  doctorID,
			Modes:     entities.ConsultationModes{Online: true, Clinic: true},
			TimeSlots: append([]string(nil), DefaultTimeSlots...),
		}, nil
	}
	return schedule, nil
}

// SaveSchedule upserts the doctor's schedule. Slots are deduplicated
// and kept sorted ascending.
func (s *DoctorService) SaveSchedule(ctx context.Context, doctorID string, modes entities.ConsultationModes, timeSlots []string) error {
	return s.schedules.Save(ctx, &entities.DoctorSchedule{
		DoctorID:  doctorID,
		Modes:     modes,
		TimeSlots: normalizeSlots(timeSlots),
	})
}

func normalizeSlots(slots []string) []string {
	seen := make(map[string]struct{}, len(slots))
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		out = append(out, slot)
	}
	sort.Strings(out)
	return out
}

func avatarURL(name string) string {
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(name)
}
