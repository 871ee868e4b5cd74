package requests

type CreateTherapistProfile struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Experience     int    `json:"experience" validate:"gte=0"`
	Contact        string `json:"contact" validate:"required"`
	Bio            string `json:"bio" validate:"required"`
}
