package therapists

import (
	"context"
	"errors"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTherapistBackendClient struct {
	mock.Mock
}

func (m *MockTherapistBackendClient) FindAll(ctx context.Context) ([]models.Therapist, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Therapist)
	return list, args.Error(1)
}

func (m *MockTherapistBackendClient) FindByID(ctx context.Context, therapistID int) (*models.Therapist, error) {
	args := m.Called(ctx, therapistID)
	therapist, _ := args.Get(0).(*models.Therapist)
	return therapist, args.Error(1)
}

func (m *MockTherapistBackendClient) FindMe(ctx context.Context) (*models.TherapistProfile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*models.TherapistProfile)
	return profile, args.Error(1)
}

func (m *MockTherapistBackendClient) Create(ctx context.Context, request *requests.CreateTherapistProfile) (*models.TherapistProfile, error) {
	args := m.Called(ctx, request)
	profile, _ := args.Get(0).(*models.TherapistProfile)
	return profile, args.Error(1)
}

func TestTherapistUsecase_FindAll(t *testing.T) {
	ctx := context.Background()
	client := new(MockTherapistBackendClient)
	client.On("FindAll", ctx).Return(sampleTherapists, nil)
	uc := NewTherapistUsecase(client, zap.NewNop())

	result, err := uc.FindAll(ctx, "social")
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Dr. Emily Rodriguez", result[0].Name)
}

func TestTherapistUsecase_CreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid payload never reaches the backend", func(t *testing.T) {
		client := new(MockTherapistBackendClient)
		uc := NewTherapistUsecase(client, zap.NewNop())

		_, err := uc.CreateProfile(ctx, &requests.CreateTherapistProfile{Name: "Dana"})
		assert.Error(t, err)
		assert.Empty(t, client.Calls)
	})

	t.Run("valid payload is created", func(t *testing.T) {
		client := new(MockTherapistBackendClient)
		request := &requests.CreateTherapistProfile{
			Name:           "Dana",
			Specialization: "Speech Therapy",
			Experience:     6,
			Contact:        "dana@example.com",
			Bio:            "Works with early communicators.",
		}
		client.On("Create", ctx, request).Return(&models.TherapistProfile{ID: 9, Name: "Dana"}, nil)
		uc := NewTherapistUsecase(client, zap.NewNop())

		profile, err := uc.CreateProfile(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, 9, profile.ID)
	})
}

func TestTherapistUsecase_ProfileStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		profile  *models.TherapistProfile
		err      error
		expected bool
	}{
		{"complete profile", &models.TherapistProfile{Specialization: "ABA", Experience: 3, Bio: "bio"}, nil, true},
		{"zero experience is incomplete", &models.TherapistProfile{Specialization: "ABA", Bio: "bio"}, nil, false},
		{"missing bio is incomplete", &models.TherapistProfile{Specialization: "ABA", Experience: 3}, nil, false},
		{"backend failure reads as incomplete", nil, errors.New("not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockTherapistBackendClient)
			client.On("FindMe", ctx).Return(tt.profile, tt.err)
			uc := NewTherapistUsecase(client, zap.NewNop())

			assert.Equal(t, tt.expected, uc.ProfileStatus(ctx))
		})
	}
}
