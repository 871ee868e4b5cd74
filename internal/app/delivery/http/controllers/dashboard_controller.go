package controllers

import (
	"net/http"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) UserDashboard(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DashboardController.UserDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile := session.FromContext(r.Context()).Snapshot().Profile
	dashboard, err := ctrl.DashboardUsecase.UserDashboard(r.Context(), profile)
	if err != nil {
		ctrl.Log.Error("DashboardController.UserDashboard error building dashboard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccess, dashboard)
}

func (ctrl *DashboardController) TherapistDashboard(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DashboardController.TherapistDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile := session.FromContext(r.Context()).Snapshot().Profile
	dashboard, err := ctrl.DashboardUsecase.TherapistDashboard(r.Context(), profile)
	if err != nil {
		ctrl.Log.Error("DashboardController.TherapistDashboard error building dashboard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccess, dashboard)
}
