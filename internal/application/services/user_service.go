package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/domain/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration and login
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. The password is stored as a bcrypt
// hash. A duplicate email surfaces as a conflict error from the store;
// email comparison is byte-exact, no normalization.
func (s *UserService) Register(ctx context.Context, name, email, password string, role entities.Role, doctorID string) (*entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
		DoctorID: doctorID,
		Verified: false,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Str("role", string(role)).Msg("registered user")
	return user, nil
}

// Login returns the user for matching credentials and nil for any
// mismatch (wrong email, wrong password, or both). Bad credentials are
// never an error; only store failures are.
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}
