package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccess           = "successfully login"
	SignupSuccess          = "account created successfully"
	LogoutSuccess          = "successfully logout"
	GetSessionSuccess      = "get session successfully"
	RefreshSessionSuccess  = "session refreshed successfully"
	ProfileGetSuccess      = "get profile successfully"
	ProfileUpdatedSuccess  = "profile updated successfully"
	ProfileImageUploaded   = "profile image uploaded successfully"
	GetTherapistsSuccess   = "get therapists successfully"
	GetTherapistSuccess    = "get therapist successfully"
	TherapistProfileCreate = "therapist profile created successfully"
	TherapistProfileStatus = "get therapist profile status successfully"
	GetAppointmentsSuccess = "get appointments successfully"
	BookAppointmentSuccess = "appointment requested successfully"
	ConfirmAppointmentDone = "appointment confirmed successfully"
	GetDashboardSuccess    = "get dashboard successfully"
	GetTopicsSuccess       = "get topics successfully"
	CreateTopicSuccess     = "topic created successfully"
	LikeTopicSuccess       = "topic liked successfully"
	GetCommentsSuccess     = "get comments successfully"
	CreateCommentSuccess   = "comment created successfully"
	GetEventsSuccess       = "get events successfully"
	CreateEventSuccess     = "event created successfully"
	JoinEventSuccess       = "event joined successfully"
	GetResourcesSuccess    = "get resources successfully"
)
