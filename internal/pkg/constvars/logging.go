package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingRoleKey           = "role"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingBackendURLKey     = "backend_url"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingTherapistIDKey    = "therapist_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingSearchTermKey     = "search_term"
	LoggingTabKey            = "tab"
	LoggingStorageKey        = "storage_key"
	LoggingRedirectKey       = "redirect_to"
	LoggingEventKey          = "event"
	LoggingCountKey          = "count"
	LoggingCategoryKey       = "category"
)
