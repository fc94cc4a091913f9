package entities

// Role represents a user's role in the system
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// User represents an account holder. The store assigns ID; Email is
// unique with byte-exact comparison (no normalization). Password holds
// a bcrypt hash, never the plaintext.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	Role     Role   `json:"role" db:"role"`
	DoctorID string `json:"doctor_id,omitempty" db:"doctor_id"`
	Verified bool   `json:"verified" db:"verified"`
}
