package api_therapists

import (
	"context"
	"fmt"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type therapistBackendClient struct {
	Client contracts.BackendClient
	Log    *zap.Logger
}

func NewTherapistBackendClient(client contracts.BackendClient, logger *zap.Logger) contracts.TherapistBackendClient {
	return &therapistBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *therapistBackendClient) FindAll(ctx context.Context) ([]models.Therapist, error) {
	therapists := []models.Therapist{}
	err := c.Client.Get(ctx, constvars.BackendPathTherapists, nil, &therapists)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("therapistBackendClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(therapists)),
	)
	return therapists, nil
}

func (c *therapistBackendClient) FindByID(ctx context.Context, therapistID int) (*models.Therapist, error) {
	therapist := new(models.Therapist)
	err := c.Client.Get(ctx, fmt.Sprintf("%s/%d", constvars.BackendPathTherapists, therapistID), nil, therapist)
	if err != nil {
		return nil, err
	}
	return therapist, nil
}

func (c *therapistBackendClient) FindMe(ctx context.Context) (*models.TherapistProfile, error) {
	profile := new(models.TherapistProfile)
	err := c.Client.Get(ctx, constvars.BackendPathTherapistsMe, nil, profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *therapistBackendClient) Create(ctx context.Context, request *requests.CreateTherapistProfile) (*models.TherapistProfile, error) {
	profile := new(models.TherapistProfile)
	err := c.Client.Post(ctx, constvars.BackendPathTherapists, request, profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
