package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentType represents the consultation mode of an appointment
type AppointmentType string

const (
	AppointmentTypeOnline   AppointmentType = "online"
	AppointmentTypeInPerson AppointmentType = "in-person"
)

// PaymentStatus represents whether an appointment has been paid for
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentMethod represents how the patient chose to pay
type PaymentMethod string

const (
	PaymentMethodPayLater   PaymentMethod = "pay_later"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodWallet     PaymentMethod = "wallet"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
)

// Appointment represents a booked consultation. PaymentStatus is fixed
// at creation: pending iff PaymentMethod is pay_later, paid otherwise.
type Appointment struct {
	ID               int64             `json:"id" db:"id"`
	DoctorID         string            `json:"doctor_id" db:"doctor_id"`
	PatientID        int64             `json:"patient_id" db:"patient_id"`
	PatientName      string            `json:"patient_name" db:"patient_name"`
	Date             string            `json:"date" db:"date"`
	Time             string            `json:"time" db:"time"`
	Type             AppointmentType   `json:"type" db:"type"`
	PaymentStatus    PaymentStatus     `json:"payment_status" db:"payment_status"`
	PaymentMethod    PaymentMethod     `json:"payment_method" db:"payment_method"`
	Amount           string            `json:"amount" db:"amount"`
	Status           AppointmentStatus `json:"status" db:"status"`
	ConditionSummary string            `json:"condition_summary" db:"condition_summary"`
}
