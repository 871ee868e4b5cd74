package contracts

import (
	"context"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/dto/requests"
)

type AppointmentBackendClient interface {
	FindPending(ctx context.Context) ([]models.Appointment, error)
	FindConfirmed(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, request *models.AppointmentRequest) (*models.Appointment, error)
	Confirm(ctx context.Context, appointmentID int) (*models.Appointment, error)
}

type AppointmentUsecase interface {
	List(ctx context.Context, role string) ([]models.Appointment, error)
	Book(ctx context.Context, role string, request *requests.BookAppointment) (*models.Appointment, error)
	Confirm(ctx context.Context, appointmentID int) (*models.Appointment, error)
}

type AppointmentEventPublisher interface {
	Publish(ctx context.Context, event *models.AppointmentEvent) error
}
