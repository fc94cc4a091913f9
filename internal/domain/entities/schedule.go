package entities

// ConsultationModes flags which consultation types a doctor offers
type ConsultationModes struct {
	Online bool `json:"online" db:"online"`
	Clinic bool `json:"clinic" db:"clinic"`
}

// DoctorSchedule holds a doctor's consultation modes and bookable time
// slots. One row per doctor; TimeSlots are deduplicated and kept sorted
// ascending.
type DoctorSchedule struct {
	DoctorID  string            `json:"doctor_id" db:"doctor_id"`
	Modes     ConsultationModes `json:"consultation_modes" db:"consultation_modes"`
	TimeSlots []string          `json:"time_slots" db:"time_slots"`
}
