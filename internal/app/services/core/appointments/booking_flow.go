package appointments

import (
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/exceptions"
	"time"
)

// BookingFlow collects a therapist, a day and a slot before a booking request
// can be built. Only clients book.
type BookingFlow struct {
	Loc         *time.Location
	ActiveTab   string
	therapistID int
	date        time.Time
	slot        string
}

// StartBooking opens a flow with nothing selected and today as the day.
func StartBooking(role string, loc *time.Location) (*BookingFlow, error) {
	if role != constvars.RoleUser {
		return nil, exceptions.ErrBookingNotAllowed(nil)
	}
	now := time.Now().In(loc)
	return &BookingFlow{
		Loc:       loc,
		ActiveTab: DefaultTab,
		date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc),
	}, nil
}

func (f *BookingFlow) SelectTherapist(therapistID int) {
	f.therapistID = therapistID
}

func (f *BookingFlow) SelectDate(date time.Time) {
	f.date = date
}

func (f *BookingFlow) SelectSlot(label string) {
	f.slot = label
}

// Request builds the booking payload, or reports an incomplete selection.
func (f *BookingFlow) Request() (*models.AppointmentRequest, error) {
	if f.therapistID <= 0 || f.date.IsZero() || f.slot == "" {
		return nil, exceptions.ErrIncompleteSelection(nil)
	}

	scheduled, err := ScheduledTime(f.date, f.slot, f.Loc)
	if err != nil {
		return nil, err
	}

	return &models.AppointmentRequest{
		TherapistID:   f.therapistID,
		ScheduledTime: models.NewTimestamp(scheduled),
	}, nil
}

// Complete clears the selection after a successful request and switches to the pending tab.
func (f *BookingFlow) Complete() {
	f.therapistID = 0
	f.slot = ""
	f.ActiveTab = string(models.AppointmentStatusPending)
}

func (f *BookingFlow) Date() time.Time {
	return f.date
}

func (f *BookingFlow) Slot() string {
	return f.slot
}
