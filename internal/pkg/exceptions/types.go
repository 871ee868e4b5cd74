package exceptions

import (
	"errors"
	"fmt"
	"spectrumconnect-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrServerPanic = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanic)
	}

	// Client-side validation, surfaced with the messages the views show.
	ErrClientValidation = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrIncompleteSelection = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientIncompleteSelection, constvars.ErrDevIncompleteSelection)
	}
	ErrUnknownTimeSlot = func(err error, slot string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientIncompleteSelection, fmt.Sprintf(constvars.ErrDevUnknownTimeSlot, slot))
	}
	ErrBookingNotAllowed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientBookingOnlyForUsers, constvars.ErrDevBookingNotAllowed)
	}

	// Auth
	ErrUnknownUserType = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevUnknownUserType)
	}
	ErrInvalidRoleType = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidRoleType)
	}
	ErrNotMatchRoleType = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevRoleTypeDoesntMatch)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenSigningMethod = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
	}

	// Minio
	ErrMinioFindObjectPresignedURL = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToGetObjectPresignedURL, bucketName))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisScanKeys = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisScanKeys)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, exchange string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, exchange))
	}

	// HTTP collaborator
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrOutboundRateLimit = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientServerLongRespond, constvars.ErrDevOutboundRateLimit)
	}
	ErrDecodeResponse = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, path))
	}
)

// BackendError is a non-2xx answer from the backend API.
type BackendError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf(constvars.ErrDevBackendRejected, e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf(constvars.ErrDevBackendRejected+": %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

// ErrBackendRejected keeps 4xx statuses and turns 5xx into 502, using the
// backend detail as the client message when there is one.
func ErrBackendRejected(backendErr *BackendError) *CustomError {
	statusCode := backendErr.StatusCode
	if statusCode >= constvars.StatusInternalServerError || statusCode < constvars.StatusBadRequest {
		statusCode = constvars.StatusBadGateway
	}

	clientMessage := backendErr.Detail
	if clientMessage == "" {
		clientMessage = constvars.ErrClientCannotProcessRequest
	}

	return BuildNewCustomError(backendErr, statusCode, clientMessage, constvars.ErrDevSendHTTPRequest)
}

// IsBackendStatus reports whether err carries a backend answer with the given status.
func IsBackendStatus(err error, statusCode int) bool {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.StatusCode == statusCode
	}
	return false
}

// IsClientSide reports a 4xx raised before any backend call was made.
func IsClientSide(err error) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) || customErr.StatusCode < constvars.StatusBadRequest || customErr.StatusCode >= constvars.StatusInternalServerError {
		return false
	}
	var backendErr *BackendError
	return !errors.As(err, &backendErr)
}

// WithClientMessage keeps the status and trace of err and replaces what the client sees.
func WithClientMessage(err error, clientMessage string) error {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, clientMessage, constvars.ErrDevServerProcess)
	}
	copied := *customErr
	copied.ClientMessage = clientMessage
	return &copied
}

// WithFallbackMessage is WithClientMessage for errors that carry no backend
// detail and were not raised by client-side validation.
func WithFallbackMessage(err error, clientMessage string) error {
	if IsClientSide(err) {
		return err
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) && backendErr.Detail != "" {
		return err
	}
	return WithClientMessage(err, clientMessage)
}

// ClientMessage is what the client would be shown for err.
func ClientMessage(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
