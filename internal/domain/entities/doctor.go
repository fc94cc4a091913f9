package entities

// SpecializationGeneralPractitioner is the fallback specialization used
// by the recommendation engine when no specialist matches.
const SpecializationGeneralPractitioner = "General Practitioner"

// Doctor represents a practitioner available for consultation.
// CompatibilityScore is ephemeral ranking output, recomputed per
// request and persisted as 0 at rest.
type Doctor struct {
	ID                 string   `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	Specialization     string   `json:"specialization" db:"specialization"`
	Experience         string   `json:"experience" db:"experience"`
	Rating             float64  `json:"rating" db:"rating"`
	Distance           string   `json:"distance" db:"distance"`
	ImageURL           string   `json:"image_url" db:"image_url"`
	Available          bool     `json:"available" db:"available"`
	Bio                string   `json:"bio" db:"bio"`
	Specialties        []string `json:"specialties" db:"specialties"`
	Verified           bool     `json:"verified" db:"verified"`
	CompatibilityScore float64  `json:"compatibility_score" db:"compatibility_score"`
}
