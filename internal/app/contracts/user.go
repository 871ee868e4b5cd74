package contracts

import (
	"context"
	"io"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"
)

type UserBackendClient interface {
	Login(ctx context.Context, request *requests.Login) (*models.TokenData, error)
	Signup(ctx context.Context, request *requests.Signup) (*models.UserProfile, error)
	FindMe(ctx context.Context) (*models.UserProfile, error)
	UploadProfileImage(ctx context.Context, fileName string, file io.Reader) (*responses.ProfileImage, error)
}

type UserUsecase interface {
	UploadProfileImage(ctx context.Context, request *requests.UploadProfileImage) (*responses.ProfileImage, error)
}
