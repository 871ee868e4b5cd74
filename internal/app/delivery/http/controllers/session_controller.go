package controllers

import (
	"net/http"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type SessionController struct {
	Log *zap.Logger
}

func NewSessionController(logger *zap.Logger) *SessionController {
	return &SessionController{
		Log: logger,
	}
}

func (ctrl *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccess, session.FromContext(r.Context()).Snapshot())
}

func (ctrl *SessionController) Refresh(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	store := session.FromContext(r.Context())

	err := store.Refresh(r.Context())
	if err != nil {
		ctrl.Log.Error("SessionController.Refresh error refreshing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshSessionSuccess, store.Snapshot())
}
