package therapists

import (
	"spectrumconnect-service/internal/app/models"
	"strings"
)

// Directory filters an already fetched therapist collection in memory.
type Directory struct {
	therapists []models.Therapist
}

func NewDirectory(therapists []models.Therapist) *Directory {
	return &Directory{therapists: therapists}
}

// Search keeps therapists whose name, specialty, location or any tag contains
// term, case-insensitively. A blank term returns the collection as fetched.
// The term itself is not trimmed.
func (d *Directory) Search(term string) []models.Therapist {
	if strings.TrimSpace(term) == "" {
		return d.therapists
	}

	needle := strings.ToLower(term)
	matches := make([]models.Therapist, 0, len(d.therapists))
	for _, therapist := range d.therapists {
		if matchesTherapist(therapist, needle) {
			matches = append(matches, therapist)
		}
	}
	return matches
}

func matchesTherapist(therapist models.Therapist, needle string) bool {
	fields := []string{therapist.Name, therapist.Specialty, therapist.Location}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, tag := range therapist.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
