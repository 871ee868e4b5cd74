package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_SESSION_STORE_KEY        ContextKey = "session_store"
	CONTEXT_GUARD_OPTIONS_KEY        ContextKey = "guard_options"
)

const (
	REQUEST_ID_PREFIX = "SPCNT_GW_"
)

// Roles known to the backend. The backend calls the client role "user".
const (
	RoleUser      = "user"
	RoleTherapist = "therapist"
)

// Keys of the persisted per-session storage.
const (
	StorageKeyAccessToken = "accessToken"
	StorageKeyTokenType   = "tokenType"
	StorageKeyUserType    = "userType"
	StorageKeyUserProfile = "user_profile"
)

const (
	StorageKeyPrefix       = "session"
	DefaultTokenType       = "Bearer"
	SessionCookieName      = "sc_session"
	SessionJWTClaimID      = "session_id"
	SessionTokenHeaderName = "X-Session-Token"
)

// View paths the guard redirects to.
const (
	PathLogin              = "/login"
	PathUserDashboard      = "/user-dashboard"
	PathTherapistDashboard = "/therapist-dashboard"
	PathDashboardMarker    = "dashboard"
)

const (
	NoticeVariantDefault     = "default"
	NoticeVariantDestructive = "destructive"
)
