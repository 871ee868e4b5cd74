package contracts

import (
	"context"
	"spectrumconnect-service/internal/app/models"
)

type DashboardUsecase interface {
	UserDashboard(ctx context.Context, profile *models.UserProfile) (*models.UserDashboard, error)
	TherapistDashboard(ctx context.Context, profile *models.UserProfile) (*models.TherapistDashboard, error)
}
