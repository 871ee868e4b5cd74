package constvars

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMEApplicationJSON = "application/json"
	MIMEMultipartForm   = "multipart/form-data"
	MIMEImageJPEG       = "image/jpeg"
	MIMEImagePNG        = "image/png"
	MIMEImageWEBP       = "image/webp"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderLocation      = "Location"
	HeaderXRequestID    = "X-Request-ID"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusSeeOther            = 303
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusRequestTooLarge     = 413
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

// Backend API paths.
const (
	BackendPathLogin                 = "/login"
	BackendPathUsers                 = "/users"
	BackendPathUsersMe               = "/users/me"
	BackendPathUploadProfileImage    = "/users/upload-profile-image"
	BackendPathTherapists            = "/therapists"
	BackendPathTherapistsMe          = "/therapists/me"
	BackendPathAppointments          = "/appointments/"
	BackendPathAppointmentsPending   = "/appointments/pending"
	BackendPathAppointmentsConfirm   = "/appointments/%d/confirm"
	BackendPathAppointmentsConfirmed = "/appointments/confirmed"
	BackendPathCommunityTopics       = "/community/topics"
	BackendPathCommunityTopicLike    = "/community/topics/%d/like"
	BackendPathCommunityComments     = "/community/topics/%d/comments"
	BackendPathCommunityEvents       = "/community/events"
	BackendPathCommunityEventJoin    = "/community/events/%d/join"
)

const (
	MultipartFieldImage = "image"
)
