package dashboards

import (
	"context"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/app/services/core/appointments"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	AppointmentUsecase contracts.AppointmentUsecase
	TherapistUsecase   contracts.TherapistUsecase
	Location           *time.Location
	Now                func() time.Time
	Log                *zap.Logger
}

func NewDashboardUsecase(
	appointmentUsecase contracts.AppointmentUsecase,
	therapistUsecase contracts.TherapistUsecase,
	location *time.Location,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	if location == nil {
		location = time.UTC
	}
	return &dashboardUsecase{
		AppointmentUsecase: appointmentUsecase,
		TherapistUsecase:   therapistUsecase,
		Location:           location,
		Now:                time.Now,
		Log:                logger,
	}
}

func (uc *dashboardUsecase) UserDashboard(ctx context.Context, profile *models.UserProfile) (*models.UserDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.UserDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	confirmed, err := uc.listOrEmpty(ctx, requestID, constvars.RoleUser)
	if err != nil {
		return nil, err
	}

	upcoming := appointments.Upcoming(confirmed, uc.Now())
	return &models.UserDashboard{
		Profile:              profile,
		UpcomingAppointments: upcoming,
		UpcomingCount:        len(upcoming),
	}, nil
}

// TherapistDashboard checks profile completeness first. An incomplete profile
// gets the setup hint and no appointment data.
func (uc *dashboardUsecase) TherapistDashboard(ctx context.Context, profile *models.UserProfile) (*models.TherapistDashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.TherapistDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	dashboard := &models.TherapistDashboard{
		Profile:         profile,
		PendingRequests: []models.Appointment{},
		TodaySessions:   []models.Appointment{},
	}

	if !uc.TherapistUsecase.ProfileStatus(ctx) {
		dashboard.SetupHint = constvars.NoticeDescProfileSetupHint
		return dashboard, nil
	}
	dashboard.ProfileCompleted = true

	pending, err := uc.listOrEmpty(ctx, requestID, constvars.RoleTherapist)
	if err != nil {
		return nil, err
	}

	dashboard.PendingRequests = pending
	dashboard.PendingCount = len(pending)
	dashboard.TodaySessions = appointments.OnDate(pending, uc.Now(), uc.Location)
	return dashboard, nil
}

// listOrEmpty reads a backend 404 ("No pending appointments found") as an empty list.
func (uc *dashboardUsecase) listOrEmpty(ctx context.Context, requestID, role string) ([]models.Appointment, error) {
	list, err := uc.AppointmentUsecase.List(ctx, role)
	if err == nil {
		return list, nil
	}
	if exceptions.IsBackendStatus(err, constvars.StatusNotFound) {
		uc.Log.Info("dashboardUsecase.listOrEmpty backend has no appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, role),
		)
		return []models.Appointment{}, nil
	}
	return nil, err
}
