package events

import (
	"context"
	"spectrumconnect-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNoopPublisher_Publish(t *testing.T) {
	publisher := NewNoopPublisher(zap.NewNop())

	err := publisher.Publish(context.Background(), &models.AppointmentEvent{
		Type:          models.AppointmentEventRequested,
		AppointmentID: 42,
	})

	assert.NoError(t, err)
}
