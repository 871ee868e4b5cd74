package session

import (
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() *requests.Signup {
	return &requests.Signup{
		Name:            "Alex",
		Email:           "alex@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
		AgreeTerms:      true,
		UserType:        constvars.RoleUser,
	}
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(r *requests.Signup)
		expected string
	}{
		{"missing name", func(r *requests.Signup) { r.Name = "" }, constvars.ErrClientFillAllFields},
		{"missing confirmation", func(r *requests.Signup) { r.ConfirmPassword = "" }, constvars.ErrClientFillAllFields},
		{"mismatch before terms", func(r *requests.Signup) {
			r.ConfirmPassword = "different1"
			r.AgreeTerms = false
		}, constvars.ErrClientPasswordsDoNotMatch},
		{"terms before length", func(r *requests.Signup) {
			r.Password, r.ConfirmPassword = "short", "short"
			r.AgreeTerms = false
		}, constvars.ErrClientTermsNotAccepted},
		{"short password", func(r *requests.Signup) { r.Password, r.ConfirmPassword = "short", "short" }, constvars.ErrClientPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validSignup()
			tt.modify(request)

			err := ValidateSignup(request)
			require.Error(t, err)
			assert.Equal(t, tt.expected, exceptions.ClientMessage(err))
		})
	}

	t.Run("blank user type defaults to user", func(t *testing.T) {
		request := validSignup()
		request.UserType = ""

		require.NoError(t, ValidateSignup(request))
		assert.Equal(t, constvars.RoleUser, request.UserType)
	})

	t.Run("unknown user type is rejected", func(t *testing.T) {
		request := validSignup()
		request.UserType = "admin"
		assert.Error(t, ValidateSignup(request))
	})

	t.Run("eight characters is enough", func(t *testing.T) {
		request := validSignup()
		request.Password, request.ConfirmPassword = "12345678", "12345678"
		assert.NoError(t, ValidateSignup(request))
	})
}
