package session

import (
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"
)

const minPasswordLength = 8

// ValidateSignup reports the first problem of the signup form.
func ValidateSignup(request *requests.Signup) error {
	if request.Name == "" || request.Email == "" || request.Password == "" || request.ConfirmPassword == "" {
		return exceptions.ErrClientValidation(nil, constvars.ErrClientFillAllFields)
	}
	if request.Password != request.ConfirmPassword {
		return exceptions.ErrClientValidation(nil, constvars.ErrClientPasswordsDoNotMatch)
	}
	if !request.AgreeTerms {
		return exceptions.ErrClientValidation(nil, constvars.ErrClientTermsNotAccepted)
	}
	if len(request.Password) < minPasswordLength {
		return exceptions.ErrClientValidation(nil, constvars.ErrClientPasswordTooShort)
	}
	if request.UserType == "" {
		request.UserType = constvars.RoleUser
	}
	if !utils.IsValidRole(request.UserType) {
		return exceptions.ErrInvalidRoleType(nil)
	}
	return nil
}
