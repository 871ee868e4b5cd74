package controllers

import (
	"net/http"
	"spectrumconnect-service/internal/app/services/core/guard"
	"spectrumconnect-service/internal/app/services/core/session"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/exceptions"
	"spectrumconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log *zap.Logger
}

func NewAuthController(logger *zap.Logger) *AuthController {
	return &AuthController{
		Log: logger,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.Login)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)

	state, err := session.FromContext(r.Context()).Login(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error logging in",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WithFallbackMessage(err, constvars.ErrClientLoginFailed))
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, state.Role),
	)
	notice := utils.NewNotice(constvars.NoticeTitleSuccess, constvars.NoticeDescLoggedIn)
	utils.BuildNavigateResponse(w, constvars.StatusOK, constvars.LoginSuccess, guard.DashboardPath(state.Role), notice, state)
}

// Signup creates the account and logs straight into it. When that login
// fails the account still exists and the client is sent to the login view.
func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.Signup)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)

	store := session.FromContext(r.Context())
	profile, err := store.Signup(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("AuthController.Signup error creating account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WithFallbackMessage(err, constvars.ErrClientSignupFailed))
		return
	}

	_, err = store.Login(r.Context(), &requests.Login{
		Email:    request.Email,
		Password: request.Password,
		UserType: request.UserType,
	})
	if err != nil {
		ctrl.Log.Warn("AuthController.Signup auto-login failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notice := utils.NewNotice(constvars.NoticeTitleAccountCreated, constvars.NoticeDescLoginWithNewAccount)
		utils.BuildNavigateResponse(w, constvars.StatusCreated, constvars.SignupSuccess, constvars.PathLogin, notice, profile)
		return
	}

	ctrl.Log.Info("AuthController.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.UserType),
	)
	notice := utils.NewNotice(constvars.NoticeTitleSuccess, constvars.NoticeDescAccountCreated)
	utils.BuildNavigateResponse(w, constvars.StatusCreated, constvars.SignupSuccess, guard.DashboardPath(request.UserType), notice, profile)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session.FromContext(r.Context()).Logout(r.Context())
	utils.BuildNavigateResponse(w, constvars.StatusOK, constvars.LogoutSuccess, constvars.PathLogin, nil, nil)
}
