package responses

import "spectrumconnect-service/internal/app/models"

// AppointmentList is the appointments view: the held list, the rendered tab and the calendar day.
type AppointmentList struct {
	Tab            string                           `json:"tab"`
	Appointments   []models.Appointment             `json:"appointments"`
	Counts         map[models.AppointmentStatus]int `json:"counts"`
	Date           string                           `json:"date"`
	SessionsOnDate []models.Appointment             `json:"sessions_on_date"`
	TimeSlots      []string                         `json:"time_slots"`
}

// BookedAppointment is the answer to a booking; Tab is the tab the view switches to.
type BookedAppointment struct {
	Appointment *models.Appointment `json:"appointment"`
	Tab         string              `json:"tab"`
}
