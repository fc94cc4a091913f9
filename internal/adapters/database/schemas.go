package database

import (
	"github.com/zatekoja/symptom-triage/internal/store"
)

// Table names. Exported so the seeding procedure can purge stale
// fixture rows through the store directly; domain logic goes through
// the repository interfaces instead.
const (
	TableUsers        = "users"
	TableDoctors      = "doctors"
	TableAppointments = "appointments"
	TableSchedules    = "doctor_settings"
)

// EnsureTables declares every table the adapters rely on. Idempotent;
// safe to call on every startup. A failure here leaves the store
// unusable and repository calls will surface UNAVAILABLE.
func EnsureTables(st *store.Store) error {
	schemas := []store.Schema{
		{Name: TableUsers, Identity: "id", Unique: []string{"email"}},
		{Name: TableDoctors},
		{Name: TableAppointments, Identity: "id"},
		{Name: TableSchedules, Unique: []string{"doctor_id"}},
	}
	for _, schema := range schemas {
		if err := st.EnsureTable(schema); err != nil {
			return err
		}
	}
	return nil
}
