package controllers

import (
	"net/http"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type TherapistController struct {
	Log              *zap.Logger
	TherapistUsecase contracts.TherapistUsecase
}

func NewTherapistController(logger *zap.Logger, therapistUsecase contracts.TherapistUsecase) *TherapistController {
	return &TherapistController{
		Log:              logger,
		TherapistUsecase: therapistUsecase,
	}
}

func (ctrl *TherapistController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	searchTerm := r.URL.Query().Get(constvars.URLQueryParamSearch)

	ctrl.Log.Info("TherapistController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSearchTermKey, searchTerm),
	)

	therapists, err := ctrl.TherapistUsecase.FindAll(r.Context(), searchTerm)
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}

	ctrl.Log.Info("TherapistController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(therapists)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapistsSuccess, therapists)
}

func (ctrl *TherapistController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	therapistID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TherapistController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTherapistIDKey, therapistID),
	)

	therapist, err := ctrl.TherapistUsecase.FindByID(r.Context(), therapistID)
	if err != nil {
		ctrl.Log.Error("TherapistController.FindByID error fetching therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		middlewares.HandleError(ctrl.Log, w, r, exceptions.WithClientMessage(err, constvars.ErrClientLoadTherapistFailed))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapistSuccess, therapist)
}

func (ctrl *TherapistController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.CreateTherapistProfile)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TherapistController.CreateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile, err := ctrl.TherapistUsecase.CreateProfile(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("TherapistController.CreateProfile error creating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if !exceptions.IsClientSide(err) {
			err = exceptions.WithClientMessage(err, constvars.ErrClientCreateProfileFailed)
		}
		middlewares.HandleErrorWithTitle(ctrl.Log, w, r, constvars.NoticeTitleProfileCreationFailed, err)
		return
	}

	ctrl.Log.Info("TherapistController.CreateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTherapistIDKey, profile.ID),
	)
	notice := utils.NewNotice(constvars.NoticeTitleProfileCreated, constvars.NoticeDescProfileCreated)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusCreated, constvars.TherapistProfileCreate, notice, profile)
}

func (ctrl *TherapistController) ProfileStatus(w http.ResponseWriter, r *http.Request) {
	status := responses.TherapistProfileStatus{
		ProfileCompleted: ctrl.TherapistUsecase.ProfileStatus(r.Context()),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TherapistProfileStatus, status)
}
