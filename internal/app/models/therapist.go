package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

type Therapist struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Tags         []string `json:"tags"`
	Availability string   `json:"availability"`
	Experience   FreeText `json:"experience"`
	Image        string   `json:"image"`
	Contact      string   `json:"contact,omitempty"`
	Bio          string   `json:"bio,omitempty"`
}

// UnmarshalJSON also accepts the backend's "specialization" field.
func (t *Therapist) UnmarshalJSON(data []byte) error {
	type therapistAlias Therapist
	var raw struct {
		therapistAlias
		Specialization string `json:"specialization"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Therapist(raw.therapistAlias)
	if t.Specialty == "" {
		t.Specialty = raw.Specialization
	}
	return nil
}

// FreeText is a display string that may arrive as a JSON number.
type FreeText string

func (f *FreeText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FreeText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FreeText(n.String())
	return nil
}

// TherapistProfile is the therapist-owned record behind /therapists and /therapists/me.
type TherapistProfile struct {
	ID             int    `json:"id,omitempty"`
	UserID         int    `json:"user_id,omitempty"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
	Contact        string `json:"contact"`
	Bio            string `json:"bio"`
}

// IsComplete requires specialization, experience and bio to be set.
func (p *TherapistProfile) IsComplete() bool {
	if p == nil {
		return false
	}
	return p.Specialization != "" && p.Experience != 0 && p.Bio != ""
}
