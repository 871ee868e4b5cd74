package controllers

import (
	"net/http"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AccountController struct {
	Log                  *zap.Logger
	UserUsecase          contracts.UserUsecase
	MaxUploadSizeInMByte int64
}

func NewAccountController(logger *zap.Logger, userUsecase contracts.UserUsecase, maxUploadSizeInMByte int64) *AccountController {
	return &AccountController{
		Log:                  logger,
		UserUsecase:          userUsecase,
		MaxUploadSizeInMByte: maxUploadSizeInMByte,
	}
}

func (ctrl *AccountController) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile := session.FromContext(r.Context()).Snapshot().Profile
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, profile)
}

// UpdateProfile merges the patch into the session's cached profile only.
func (ctrl *AccountController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.UpdateProfile)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("AccountController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile := session.FromContext(r.Context()).UpdateProfile(r.Context(), models.ProfileUpdate{
		Name:   request.Name,
		Email:  request.Email,
		Avatar: request.Avatar,
		Bio:    request.Bio,
	})
	notice := utils.NewNotice(constvars.NoticeTitleSuccess, constvars.NoticeDescProfileUpdated)
	utils.BuildSuccessResponseWithNotice(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, notice, profile)
}

func (ctrl *AccountController) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := r.ParseMultipartForm(ctrl.MaxUploadSizeInMByte << 20)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.MultipartFieldImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctrl.Log.Info("AccountController.UploadProfileImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("file_size", fileHeader.Size),
	)

	image, err := ctrl.UserUsecase.UploadProfileImage(r.Context(), &requests.UploadProfileImage{
		File:       file,
		FileHeader: fileHeader,
	})
	if err != nil {
		middlewares.HandleError(ctrl.Log, w, r, err)
		return
	}

	profile := session.FromContext(r.Context()).UpdateProfile(r.Context(), models.ProfileUpdate{
		Avatar: &image.ImageURL,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileImageUploaded, profile)
}
