package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/symptom-triage/internal/adapters/database"
	"github.com/zatekoja/symptom-triage/internal/infrastructure/clients/bolt"
	"github.com/zatekoja/symptom-triage/internal/store"
	"github.com/zatekoja/symptom-triage/pkg/config"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	client, err := bolt.NewClient(&config.StoreConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	st := store.New(client)
	require.NoError(t, database.EnsureTables(st))
	return st
}

func testSeedConfig() config.SeedConfig {
	return config.SeedConfig{
		EmailDomain:     "healthai.com",
		DoctorPassword:  "doctor123",
		PatientEmail:    "patient@demo.com",
		PatientPassword: "patient123",
	}
}
