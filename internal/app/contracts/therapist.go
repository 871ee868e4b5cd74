package contracts

import (
	"context"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/dto/requests"
)

type TherapistBackendClient interface {
	FindAll(ctx context.Context) ([]models.Therapist, error)
	FindByID(ctx context.Context, therapistID int) (*models.Therapist, error)
	FindMe(ctx context.Context) (*models.TherapistProfile, error)
	Create(ctx context.Context, request *requests.CreateTherapistProfile) (*models.TherapistProfile, error)
}

type TherapistUsecase interface {
	FindAll(ctx context.Context, searchTerm string) ([]models.Therapist, error)
	FindByID(ctx context.Context, therapistID int) (*models.Therapist, error)
	CreateProfile(ctx context.Context, request *requests.CreateTherapistProfile) (*models.TherapistProfile, error)
	ProfileStatus(ctx context.Context) bool
}
