package models

// Session is the authentication state of one browser session.
// Role and Token are both set or both empty, matching IsAuthenticated.
type Session struct {
	IsAuthenticated bool         `json:"is_authenticated"`
	Role            string       `json:"role,omitempty"`
	Profile         *UserProfile `json:"profile,omitempty"`
	Token           string       `json:"-"`
	TokenType       string       `json:"-"`
}

type UserProfile struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	UserType string `json:"userType,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// ProfileUpdate is a partial profile; nil fields are left untouched.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// MergeProfile applies update over base, last write wins.
func MergeProfile(base *UserProfile, update ProfileUpdate) *UserProfile {
	merged := UserProfile{}
	if base != nil {
		merged = *base
	}
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Avatar != nil {
		merged.Avatar = *update.Avatar
	}
	if update.Bio != nil {
		merged.Bio = *update.Bio
	}
	return &merged
}

// TokenData is what the backend answers on login.
type TokenData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
