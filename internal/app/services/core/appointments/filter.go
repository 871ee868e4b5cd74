package appointments

import (
	"sort"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/utils"
	"time"
)

// DefaultTab is the tab the appointments view opens on.
const DefaultTab = string(models.AppointmentStatusPending)

// FilterByStatus keeps appointments whose status equals tab exactly.
// A tab that names no status shows the whole list.
func FilterByStatus(appointments []models.Appointment, tab string) []models.Appointment {
	status := models.AppointmentStatus(tab)
	if !status.IsValid() {
		return appointments
	}

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == status {
			filtered = append(filtered, appointment)
		}
	}
	return filtered
}

// Partition buckets the list by status. Every status has a bucket, possibly empty.
func Partition(appointments []models.Appointment) map[models.AppointmentStatus][]models.Appointment {
	buckets := make(map[models.AppointmentStatus][]models.Appointment, len(models.AppointmentStatuses))
	for _, status := range models.AppointmentStatuses {
		buckets[status] = []models.Appointment{}
	}
	for _, appointment := range appointments {
		if _, ok := buckets[appointment.Status]; ok {
			buckets[appointment.Status] = append(buckets[appointment.Status], appointment)
		}
	}
	return buckets
}

func CountByStatus(appointments []models.Appointment) map[models.AppointmentStatus]int {
	counts := make(map[models.AppointmentStatus]int, len(models.AppointmentStatuses))
	for status, bucket := range Partition(appointments) {
		counts[status] = len(bucket)
	}
	return counts
}

// OnDate keeps appointments scheduled on the calendar day of date, as seen in loc.
func OnDate(appointments []models.Appointment, date time.Time, loc *time.Location) []models.Appointment {
	date = date.In(loc)
	sessions := []models.Appointment{}
	for _, appointment := range appointments {
		if utils.SameDay(appointment.ScheduledTime.In(loc), date) {
			sessions = append(sessions, appointment)
		}
	}
	return sessions
}

// Upcoming keeps appointments scheduled after now, soonest first.
func Upcoming(appointments []models.Appointment, now time.Time) []models.Appointment {
	upcoming := []models.Appointment{}
	for _, appointment := range appointments {
		if appointment.ScheduledTime.After(now) {
			upcoming = append(upcoming, appointment)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledTime.Before(upcoming[j].ScheduledTime.Time)
	})
	return upcoming
}
