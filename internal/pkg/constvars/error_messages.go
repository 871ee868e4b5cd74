package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gte":      "must be greater than or equal to %s",
	"gt":       "must be greater than %s",
	"oneof":    "must be one of [%s]",
	"role":     "must be either 'user' or 'therapist'",
	"datetime": "must be a date formatted as %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gte":      true,
	"gt":       true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBackendUnreachable            = "unable to reach the service, please try again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"

	ErrClientFillAllFields          = "Please fill in all fields"
	ErrClientPasswordsDoNotMatch    = "Passwords do not match"
	ErrClientTermsNotAccepted       = "You must agree to the terms and conditions"
	ErrClientPasswordTooShort       = "Password must be at least 8 characters long"
	ErrClientIncompleteSelection    = "Please select a therapist, date, and time slot"
	ErrClientBookingOnlyForUsers    = "Only clients can request appointments"
	ErrClientBookingFailed          = "Unable to book appointment. Please try again."
	ErrClientConfirmFailed          = "Could not confirm appointment."
	ErrClientLoadTherapistFailed    = "Failed to load therapist profile. Please try again later."
	ErrClientCreateProfileFailed    = "There was a problem setting up your profile. Please try again."
	ErrClientSignupFailed           = "Unable to create account. Please try again."
	ErrClientLoginFailed            = "Invalid credentials. Please try again."
	ErrClientAppointmentsLoadFailed = "Unable to load appointments. Please try again."
)

// Notice titles
const (
	NoticeTitleError                 = "Error"
	NoticeTitleSuccess               = "Success"
	NoticeTitleAuthenticationNeeded  = "Authentication required"
	NoticeTitleAccessDenied          = "Access denied"
	NoticeTitleIncompleteSelection   = "Incomplete Selection"
	NoticeTitleBookingFailed         = "Booking Failed"
	NoticeTitleAppointmentScheduled  = "Appointment Scheduled"
	NoticeTitleAppointmentConfirmed  = "Appointment Confirmed"
	NoticeTitleProfileCreated        = "Profile created successfully"
	NoticeTitleProfileCreationFailed = "Error creating profile"
	NoticeTitleAccountCreated        = "Account Created"
)

const (
	NoticeDescAuthenticationNeeded = "Please log in to access this page"
	NoticeDescAccessDeniedFormat   = "This page is only accessible to %ss"
	NoticeDescScheduledFormat      = "Appointment requested with %s on %s at %s"
	NoticeDescConfirmed            = "You have accepted the appointment."
	NoticeDescLoggedIn             = "You have successfully logged in"
	NoticeDescAccountCreated       = "Your account has been created successfully"
	NoticeDescProfileCreated       = "Your therapist profile has been set up."
	NoticeDescLoginWithNewAccount  = "Please log in with your new credentials"
	NoticeDescProfileSetupHint     = "Please complete your therapist profile to get started."
	NoticeDescProfileUpdated       = "Your profile has been updated."
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevInvalidRoleType          = "invalid role type, should be 'user' or 'therapist'"
	ErrDevUnknownUserType          = "unknown user type"
	ErrDevRoleTypeDoesntMatch      = "invalid role type, request done by user with different type"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevBackendRejected          = "backend rejected %s %s with status %d"
	ErrDevDecodeResponse           = "failed to decode backend response of %s"
	ErrDevOutboundRateLimit        = "outbound rate limiter wait aborted"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevIncompleteSelection        = "booking selection is incomplete"
	ErrDevUnknownTimeSlot            = "unknown time slot %q"
	ErrDevBookingNotAllowed          = "booking flow can only be started by role user"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Minio messages
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisScanKeys   = "failed to SCAN keys from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into exchange %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "recovered from panic"
)
