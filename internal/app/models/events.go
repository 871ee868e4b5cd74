package models

const (
	AppointmentEventRequested = "appointment.requested"
	AppointmentEventConfirmed = "appointment.confirmed"
)

// AppointmentEvent is published after a booking or confirmation succeeds.
type AppointmentEvent struct {
	Type          string            `json:"type"`
	AppointmentID int               `json:"appointment_id"`
	TherapistID   int               `json:"therapist_id,omitempty"`
	Role          string            `json:"role"`
	Status        AppointmentStatus `json:"status"`
	ScheduledTime Timestamp         `json:"scheduled_time"`
	OccurredAt    Timestamp         `json:"occurred_at"`
}
