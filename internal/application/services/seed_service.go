package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/symptom-triage/internal/adapters/database"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
	"github.com/zatekoja/symptom-triage/internal/store"
	"github.com/zatekoja/symptom-triage/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// placeholderPrefix marks stale fixture rows left behind by earlier demo
// builds. The seeder purges them on every run, before the empty check.
const placeholderPrefix = "Test Doctor"

// SeedService bootstraps a fresh store with the static roster. Run is
// idempotent: placeholder rows are purged on every start, but the
// roster is inserted only when the users table is empty. The guard
// checks users only — a store with users but no doctors stays that way.
type SeedService struct {
	store     *store.Store
	users     repositories.UserRepository
	doctors   repositories.DoctorRepository
	schedules repositories.ScheduleRepository
	cfg       config.SeedConfig
}

// NewSeedService creates a new seed service
func NewSeedService(
	st *store.Store,
	users repositories.UserRepository,
	doctors repositories.DoctorRepository,
	schedules repositories.ScheduleRepository,
	cfg config.SeedConfig,
) *SeedService {
	return &SeedService{
		store:     st,
		users:     users,
		doctors:   doctors,
		schedules: schedules,
		cfg:       cfg,
	}
}

// roster is the static initial doctor set for a fresh store
func roster() []entities.Doctor {
	return []entities.Doctor{
		{
			ID: "doc-001", Name: "Dr. Sarah Mitchell", Specialization: "Dermatologist",
			Experience: "12 years", Rating: 4.8, Distance: "1.2 km", Available: true,
			Bio:         "Board-certified dermatologist focused on chronic skin conditions including psoriasis, eczema and acne management.",
			Specialties: []string{"Psoriasis", "Eczema", "Acne", "Skin Cancer Screening"},
			Verified:    true,
		},
		{
			ID: "doc-002", Name: "Dr. James Okafor", Specialization: "Dermatologist",
			Experience: "8 years", Rating: 4.6, Distance: "2.5 km", Available: true,
			Bio:         "General dermatology practice covering routine skin checks and cosmetic consultations.",
			Specialties: []string{"Skin Checks", "Cosmetic Dermatology"},
			Verified:    true,
		},
		{
			ID: "doc-003", Name: "Dr. Amina Bello", Specialization: "Cardiologist",
			Experience: "15 years", Rating: 4.9, Distance: "3.1 km", Available: true,
			Bio:         "Interventional cardiologist treating hypertension, arrhythmia and coronary artery disease.",
			Specialties: []string{"Hypertension", "Arrhythmia", "Heart Failure"},
			Verified:    true,
		},
		{
			ID: "doc-004", Name: "Dr. Daniel Eze", Specialization: "Neurologist",
			Experience: "10 years", Rating: 4.7, Distance: "4.0 km", Available: true,
			Bio:         "Neurologist with a focus on migraine, epilepsy and movement disorders.",
			Specialties: []string{"Migraine", "Epilepsy", "Parkinson's Disease"},
			Verified:    true,
		},
		{
			ID: "doc-005", Name: "Dr. Grace Adeyemi", Specialization: "General Practitioner",
			Experience: "9 years", Rating: 4.5, Distance: "0.8 km", Available: true,
			Bio:         "Family medicine covering preventive care, infections, diabetes and everyday complaints.",
			Specialties: []string{"Preventive Care", "Diabetes", "Infections"},
			Verified:    true,
		},
		{
			ID: "doc-006", Name: "Dr. Peter Nwosu", Specialization: "Orthopedist",
			Experience: "11 years", Rating: 4.6, Distance: "5.2 km", Available: true,
			Bio:         "Orthopedic surgeon treating joint pain, arthritis and sports injuries.",
			Specialties: []string{"Arthritis", "Sports Injuries", "Joint Replacement"},
			Verified:    true,
		},
	}
}

// Run executes the seeding procedure. Safe to call on every process
// start against the same store file.
func (s *SeedService) Run(ctx context.Context) error {
	if err := s.purgePlaceholders(); err != nil {
		return err
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if userCount > 0 {
		log.Debug().Int("users", userCount).Msg("store already seeded, skipping roster")
		return nil
	}

	doctorHash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.DoctorPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, d := range roster() {
		doctor := d
		doctor.ImageURL = avatarURL(doctor.Name)

		user := &entities.User{
			Name:     doctor.Name,
			Email:    s.loginEmail(doctor.Name),
			Password: string(doctorHash),
			Role:     entities.RoleDoctor,
			DoctorID: doctor.ID,
			Verified: true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user for %s: %w", doctor.Name, err)
		}

		if err := s.doctors.Create(ctx, &doctor); err != nil {
			return fmt.Errorf("failed to seed doctor %s: %w", doctor.Name, err)
		}

		if err := s.schedules.Save(ctx, &entities.DoctorSchedule{
			DoctorID:  doctor.ID,
			Modes:     entities.ConsultationModes{Online: true, Clinic: true},
			TimeSlots: append([]string(nil), DefaultTimeSlots...),
		}); err != nil {
			return fmt.Errorf("failed to seed schedule for %s: %w", doctor.Name, err)
		}
	}

	patientHash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.PatientPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	patient := &entities.User{
		Name:     "Demo Patient",
		Email:    s.cfg.PatientEmail,
		Password: string(patientHash),
		Role:     entities.RolePatient,
		Verified: true,
	}
	if err := s.users.Create(ctx, patient); err != nil {
		return fmt.Errorf("failed to seed demo patient: %w", err)
	}

	log.Info().Int("doctors", len(roster())).Msg("seeded roster")
	return nil
}

// loginEmail derives a deterministic login address from a roster name:
// lower-cased, "dr. " prefix stripped, internal spaces replaced by
// dots, domain appended.
func (s *SeedService) loginEmail(name string) string {
	n := strings.ToLower(name)
	n = strings.TrimPrefix(n, "dr. ")
	n = strings.ReplaceAll(n, " ", ".")
	return n + "@" + s.cfg.EmailDomain
}

func (s *SeedService) purgePlaceholders() error {
	isPlaceholder := func(r store.Row) bool {
		return strings.HasPrefix(r.String("name"), placeholderPrefix)
	}
	if _, err := s.store.DeleteWhere(database.TableUsers, isPlaceholder); err != nil {
		return err
	}
	if _, err := s.store.DeleteWhere(database.TableDoctors, isPlaceholder); err != nil {
		return err
	}
	return nil
}
