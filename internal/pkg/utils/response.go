package utils

import (
	"errors"
	"net/http"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"spectrumconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func NewNotice(title, description string) *responses.Notice {
	return &responses.Notice{
		Title:       title,
		Description: description,
		Variant:     constvars.NoticeVariantDefault,
	}
}

func NewDestructiveNotice(title, description string) *responses.Notice {
	return &responses.Notice{
		Title:       title,
		Description: description,
		Variant:     constvars.NoticeVariantDestructive,
	}
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	BuildSuccessResponseWithNotice(w, code, message, nil, data)
}

func BuildSuccessResponseWithNotice(w http.ResponseWriter, code int, message string, notice *responses.Notice, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
		Notice:  notice,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildRedirectResponse answers with 303 and the view the client should navigate to.
func BuildRedirectResponse(w http.ResponseWriter, location string, notice *responses.Notice) {
	response := responses.ResponseDTO{
		Success:    false,
		Notice:     notice,
		RedirectTo: location,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.Header().Set(constvars.HeaderLocation, location)
	w.WriteHeader(constvars.StatusSeeOther)
	json.NewEncoder(w).Encode(response)
}

// BuildNavigateResponse is a successful answer that also tells the client where to go next.
func BuildNavigateResponse(w http.ResponseWriter, code int, message, location string, notice *responses.Notice, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Notice:     notice,
		RedirectTo: location,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	BuildErrorResponseWithTitle(log, w, constvars.NoticeTitleError, err)
}

func BuildErrorResponseWithTitle(log *zap.Logger, w http.ResponseWriter, title string, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
			)
		}
	} else if err != nil {
		log.Error(err.Error())
	}

	type errorResponse struct {
		exceptions.CustomError
		Notice *responses.Notice `json:"notice"`
	}

	response := errorResponse{
		CustomError: exceptions.CustomError{
			StatusCode:    code,
			Success:       false,
			ClientMessage: clientMessage,
		},
		Notice: NewDestructiveNotice(title, clientMessage),
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
