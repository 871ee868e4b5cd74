package models

type UserDashboard struct {
	Profile              *UserProfile  `json:"profile"`
	UpcomingAppointments []Appointment `json:"upcoming_appointments"`
	UpcomingCount        int           `json:"upcoming_count"`
}

type TherapistDashboard struct {
	Profile          *UserProfile  `json:"profile"`
	ProfileCompleted bool          `json:"profile_completed"`
	SetupHint        string        `json:"setup_hint,omitempty"`
	PendingRequests  []Appointment `json:"pending_requests"`
	PendingCount     int           `json:"pending_count"`
	TodaySessions    []Appointment `json:"today_sessions"`
}
