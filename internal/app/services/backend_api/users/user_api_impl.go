package api_users

import (
	"context"
	"io"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type userBackendClient struct {
	Client contracts.BackendClient
	Log    *zap.Logger
}

func NewUserBackendClient(client contracts.BackendClient, logger *zap.Logger) contracts.UserBackendClient {
	return &userBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *userBackendClient) Login(ctx context.Context, request *requests.Login) (*models.TokenData, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userBackendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)

	tokenData := new(models.TokenData)
	err := c.Client.Post(ctx, constvars.BackendPathLogin, request, tokenData)
	if err != nil {
		return nil, err
	}
	return tokenData, nil
}

func (c *userBackendClient) Signup(ctx context.Context, request *requests.Signup) (*models.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userBackendClient.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)

	payload := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		UserType string `json:"userType"`
		Role     string `json:"role"`
	}{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		UserType: request.UserType,
		Role:     request.UserType,
	}

	profile := new(models.UserProfile)
	err := c.Client.Post(ctx, constvars.BackendPathUsers, payload, profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *userBackendClient) FindMe(ctx context.Context) (*models.UserProfile, error) {
	profile := new(models.UserProfile)
	err := c.Client.Get(ctx, constvars.BackendPathUsersMe, nil, profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *userBackendClient) UploadProfileImage(ctx context.Context, fileName string, file io.Reader) (*responses.ProfileImage, error) {
	result := new(responses.ProfileImage)
	err := c.Client.PostMultipart(ctx, constvars.BackendPathUploadProfileImage, constvars.MultipartFieldImage, fileName, file, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
