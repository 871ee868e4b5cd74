package appointments

import (
	"context"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	EventPublisher           contracts.AppointmentEventPublisher
	Location                 *time.Location
	Log                      *zap.Logger
}

// NewAppointmentUsecase never updates lists in place: callers refetch with List after a mutation.
func NewAppointmentUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	eventPublisher contracts.AppointmentEventPublisher,
	location *time.Location,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	if location == nil {
		location = time.UTC
	}
	return &appointmentUsecase{
		AppointmentBackendClient: appointmentBackendClient,
		EventPublisher:           eventPublisher,
		Location:                 location,
		Log:                      logger,
	}
}

// List fetches the role's slice: therapists see pending requests, clients see
// confirmed appointments. The two endpoints do not overlap.
func (uc *appointmentUsecase) List(ctx context.Context, role string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	var (
		appointments []models.Appointment
		err          error
	)
	switch role {
	case constvars.RoleTherapist:
		appointments, err = uc.AppointmentBackendClient.FindPending(ctx)
	case constvars.RoleUser:
		appointments, err = uc.AppointmentBackendClient.FindConfirmed(ctx)
	default:
		return nil, exceptions.ErrUnknownUserType(nil)
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.List error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, role),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *appointmentUsecase) Book(ctx context.Context, role string, request *requests.BookAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTherapistIDKey, request.TherapistID),
	)

	flow, err := StartBooking(role, uc.Location)
	if err != nil {
		return nil, err
	}

	flow.SelectTherapist(request.TherapistID)
	flow.SelectSlot(request.TimeSlot)
	if request.Date == "" {
		flow.SelectDate(time.Time{})
	} else {
		date, err := utils.ParseDate(request.Date, uc.Location)
		if err != nil {
			return nil, err
		}
		flow.SelectDate(date)
	}

	appointmentRequest, err := flow.Request()
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book invalid selection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment, err := uc.AppointmentBackendClient.Create(ctx, appointmentRequest)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	flow.Complete()

	uc.publish(ctx, requestID, models.AppointmentEventRequested, role, appointment)

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingTabKey, flow.ActiveTab),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) Confirm(ctx context.Context, appointmentID int) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Confirm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentBackendClient.Confirm(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Confirm error confirming appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, requestID, models.AppointmentEventConfirmed, constvars.RoleTherapist, appointment)
	return appointment, nil
}

// publish never fails the operation it reports on.
func (uc *appointmentUsecase) publish(ctx context.Context, requestID, eventType, role string, appointment *models.Appointment) {
	event := &models.AppointmentEvent{
		Type:          eventType,
		AppointmentID: appointment.ID,
		TherapistID:   appointment.TherapistID,
		Role:          role,
		Status:        appointment.Status,
		ScheduledTime: appointment.ScheduledTime,
		OccurredAt:    models.NewTimestamp(time.Now()),
	}

	err := uc.EventPublisher.Publish(ctx, event)
	if err != nil {
		uc.Log.Error("appointmentUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, eventType),
			zap.Error(err),
		)
	}
}
