package responses

type ProfileImage struct {
	ImageURL string `json:"image_url"`
}

type TherapistProfileStatus struct {
	ProfileCompleted bool `json:"profile_completed"`
}
