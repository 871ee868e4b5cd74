package contracts

import (
	"context"
	"spectrumconnect-service/internal/app/models"
)

type ResourceUsecase interface {
	FindAll(ctx context.Context, searchTerm, tab string) ([]models.Resource, error)
}
