package entities

// Classification is the result returned by the external symptom
// classification oracle. The core consumes it opaquely as ranking
// input; it never produces one.
type Classification struct {
	SpecialistLabel    string   `json:"specialist_label"`
	Confidence         float64  `json:"confidence"`
	Urgency            string   `json:"urgency"`
	Explanation        string   `json:"explanation"`
	Conditions         []string `json:"conditions"`
	TreatmentType      string   `json:"treatment_type"`
	TreatmentReasoning string   `json:"treatment_reasoning"`
}
