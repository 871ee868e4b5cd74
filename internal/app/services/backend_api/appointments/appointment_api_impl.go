package api_appointments

import (
	"context"
	"fmt"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type appointmentBackendClient struct {
	Client contracts.BackendClient
	Log    *zap.Logger
}

func NewAppointmentBackendClient(client contracts.BackendClient, logger *zap.Logger) contracts.AppointmentBackendClient {
	return &appointmentBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *appointmentBackendClient) FindPending(ctx context.Context) ([]models.Appointment, error) {
	return c.findAll(ctx, constvars.BackendPathAppointmentsPending)
}

func (c *appointmentBackendClient) FindConfirmed(ctx context.Context) ([]models.Appointment, error) {
	return c.findAll(ctx, constvars.BackendPathAppointmentsConfirmed)
}

func (c *appointmentBackendClient) Create(ctx context.Context, request *models.AppointmentRequest) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	err := c.Client.Post(ctx, constvars.BackendPathAppointments, request, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentBackendClient) Confirm(ctx context.Context, appointmentID int) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	err := c.Client.Put(ctx, fmt.Sprintf(constvars.BackendPathAppointmentsConfirm, appointmentID), nil, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentBackendClient) findAll(ctx context.Context, path string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.findAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	appointments := []models.Appointment{}
	err := c.Client.Get(ctx, path, nil, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
