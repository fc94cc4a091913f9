package config

import (
	"os"
)

// Config holds all application configuration
type Config struct {
	Env   string
	Store StoreConfig
	Seed  SeedConfig
}

// StoreConfig holds record store configuration
type StoreConfig struct {
	// Path is the location of the bbolt database file
	Path string
}

// SeedConfig holds seeding configuration
type SeedConfig struct {
	// EmailDomain is appended to derived doctor login emails
	EmailDomain string

	// DoctorPassword is the default password for seeded doctor accounts
	DoctorPassword string

	// PatientEmail and PatientPassword identify the single demo patient
	PatientEmail    string
	PatientPassword string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "triage.db"),
		},
		Seed: SeedConfig{
			EmailDomain:     getEnv("SEED_EMAIL_DOMAIN", "healthai.com"),
			DoctorPassword:  getEnv("SEED_DOCTOR_PASSWORD", "doctor123"),
			PatientEmail:    getEnv("SEED_PATIENT_EMAIL", "patient@demo.com"),
			PatientPassword: getEnv("SEED_PATIENT_PASSWORD", "patient123"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
