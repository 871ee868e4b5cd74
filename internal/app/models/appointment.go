package models

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every status in tab order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

func (s AppointmentStatus) IsValid() bool {
	for _, status := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether the backend may move an appointment from s to next.
// Completed and cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID            int               `json:"id"`
	TherapistID   int               `json:"therapist_id,omitempty"`
	UserID        int               `json:"user_id,omitempty"`
	Therapist     *Therapist        `json:"therapist,omitempty"`
	User          *AppointmentUser  `json:"user,omitempty"`
	ScheduledTime Timestamp         `json:"scheduled_time"`
	Status        AppointmentStatus `json:"status"`
}

// AppointmentUser is the requesting client as the backend joins it in.
type AppointmentUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// AppointmentRequest is the booking payload sent to the backend.
type AppointmentRequest struct {
	TherapistID   int       `json:"therapist_id"`
	ScheduledTime Timestamp `json:"scheduled_time"`
}
