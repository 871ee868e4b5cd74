package events

import (
	"context"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher only logs the event, for deployments without a broker.
func NewNoopPublisher(logger *zap.Logger) contracts.AppointmentEventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Debug("noopPublisher.Publish skipped",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Type),
		zap.Int(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
