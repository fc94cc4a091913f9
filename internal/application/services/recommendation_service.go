package services

import (
	"sort"
	"strings"

	"github.com/zatekoja/symptom-triage/internal/domain/entities"
)

// RecommendationService turns a classification result into an ordered,
// bounded doctor recommendation list. Pure: no storage access, no
// mutation of the snapshot passed in, byte-identical output for
// identical input.
type RecommendationService struct {
	matchWeight float64
	stemBonus   float64
	scoreCap    float64
	maxResults  int
}

// NewRecommendationService creates a recommendation service with the
// triage scoring constants. The weight 25 guarantees a doctor with any
// single condition-text match outranks one with none; the cap 99 keeps
// every score short of full confidence.
func NewRecommendationService() *RecommendationService {
	return &RecommendationService{
		matchWeight: 25,
		stemBonus:   0.5,
		scoreCap:    99,
		maxResults:  3,
	}
}

// Rank scores the given doctors against the classification and returns
// at most three, best first. Candidates are doctors whose
// specialization equals the specialist label case-insensitively; when
// none match, doctors whose specialization is exactly
// "General Practitioner" (case-sensitive) stand in. Ties keep candidate
// order. Degenerate input — empty conditions, zero confidence, an
// unrecognized label — still yields a valid, possibly short, list.
func (s *RecommendationService) Rank(result *entities.Classification, allDoctors []*entities.Doctor) []*entities.Doctor {
	candidates := filterBySpecialization(allDoctors, result.SpecialistLabel)
	if len(candidates) == 0 {
		for _, d := range allDoctors {
			if d.Specialization == entities.SpecializationGeneralPractitioner {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	ranked := make([]*entities.Doctor, len(candidates))
	for i, d := range candidates {
		scored := *d
		scored.CompatibilityScore = s.score(d, result)
		ranked[i] = &scored
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompatibilityScore > ranked[j].CompatibilityScore
	})

	if len(ranked) > s.maxResults {
		ranked = ranked[:s.maxResults]
	}
	return ranked
}

// score adds 1.0 per condition found literally in the doctor's
// searchable text. A condition longer than five characters that only
// matches with its last two characters truncated earns 0.5 instead, a
// crude stem so condition labels still catch adjectival forms in bios.
func (s *RecommendationService) score(d *entities.Doctor, result *entities.Classification) float64 {
	blob := strings.ToLower(strings.Join(d.Specialties, " ") + " " + d.Bio)

	matches := 0.0
	for _, condition := range result.Conditions {
		c := strings.ToLower(condition)
		if c == "" {
			continue
		}
		switch {
		case strings.Contains(blob, c):
			matches += 1.0
		case len(condition) > 5 && strings.Contains(blob, c[:len(c)-2]):
			matches += s.stemBonus
		}
	}

	score := result.Confidence + matches*s.matchWeight
	if score > s.scoreCap {
		score = s.scoreCap
	}
	return score
}

func filterBySpecialization(doctors []*entities.Doctor, label string) []*entities.Doctor {
	var out []*entities.Doctor
	for _, d := range doctors {
		if strings.EqualFold(d.Specialization, label) {
			out = append(out, d)
		}
	}
	return out
}
