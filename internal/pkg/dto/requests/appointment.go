package requests

type BookAppointment struct {
	TherapistID int    `json:"therapist_id"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
}

type AppointmentQuery struct {
	Tab  string
	Date string
}
