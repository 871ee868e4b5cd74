package appointments

import (
	"fmt"
	"regexp"
	"spectrumconnect-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"time"
)

// TimeSlots are the fixed one-hour windows offered when booking.
var TimeSlots = []string{
	"09:00 AM - 10:00 AM",
	"10:30 AM - 11:30 AM",
	"01:00 PM - 02:00 PM",
	"02:30 PM - 03:30 PM",
	"04:00 PM - 05:00 PM",
}

var slotStartPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// Slot is the start of a time slot on the 24-hour clock.
type Slot struct {
	Label  string
	Hour   int
	Minute int
}

// ParseSlot reads the start time of a slot label such as "01:00 PM - 02:00 PM".
// Labels outside TimeSlots are rejected.
func ParseSlot(label string) (Slot, error) {
	if !isOfferedSlot(label) {
		return Slot{}, exceptions.ErrUnknownTimeSlot(nil, label)
	}

	start := strings.TrimSpace(strings.SplitN(label, " - ", 2)[0])
	matches := slotStartPattern.FindStringSubmatch(start)
	if matches == nil {
		return Slot{}, exceptions.ErrUnknownTimeSlot(fmt.Errorf("malformed slot start %q", start), label)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	return Slot{
		Label:  label,
		Hour:   To24Hour(hour, matches[3] == "PM"),
		Minute: minute,
	}, nil
}

// To24Hour adds 12 to PM hours other than 12. AM hours are kept as written.
func To24Hour(hour int, isPM bool) int {
	if isPM && hour != 12 {
		return hour + 12
	}
	return hour
}

// ScheduledTime combines the calendar day of date with the slot start, in loc.
func ScheduledTime(date time.Time, label string, loc *time.Location) (time.Time, error) {
	slot, err := ParseSlot(label)
	if err != nil {
		return time.Time{}, err
	}
	date = date.In(loc)
	return time.Date(date.Year(), date.Month(), date.Day(), slot.Hour, slot.Minute, 0, 0, loc), nil
}

func isOfferedSlot(label string) bool {
	for _, slot := range TimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}
