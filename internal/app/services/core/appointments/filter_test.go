package appointments

import (
	"spectrumconnect-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func appointmentAt(id int, status models.AppointmentStatus, at time.Time) models.Appointment {
	return models.Appointment{
		ID:            id,
		TherapistID:   1,
		UserID:        2,
		Status:        status,
		ScheduledTime: models.NewTimestamp(at),
	}
}

func TestFilterByStatus(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	list := []models.Appointment{
		appointmentAt(1, models.AppointmentStatusPending, now),
		appointmentAt(2, models.AppointmentStatusConfirmed, now),
		appointmentAt(3, models.AppointmentStatusPending, now),
		appointmentAt(4, models.AppointmentStatusCancelled, now),
	}

	t.Run("exact status match keeps order", func(t *testing.T) {
		filtered := FilterByStatus(list, "pending")
		assert.Len(t, filtered, 2)
		assert.Equal(t, 1, filtered[0].ID)
		assert.Equal(t, 3, filtered[1].ID)
	})

	t.Run("status with no entries gives empty", func(t *testing.T) {
		assert.Empty(t, FilterByStatus(list, "completed"))
	})

	t.Run("case differs so nothing matches the tab as a status", func(t *testing.T) {
		assert.Len(t, FilterByStatus(list, "Pending"), len(list))
	})

	t.Run("unknown tab shows everything", func(t *testing.T) {
		assert.Len(t, FilterByStatus(list, "all"), len(list))
	})
}

func TestPartitionAndCount(t *testing.T) {
	now := time.Now()
	list := []models.Appointment{
		appointmentAt(1, models.AppointmentStatusPending, now),
		appointmentAt(2, models.AppointmentStatusConfirmed, now),
		appointmentAt(3, models.AppointmentStatusConfirmed, now),
	}

	buckets := Partition(list)
	assert.Len(t, buckets, 4)
	assert.Len(t, buckets[models.AppointmentStatusConfirmed], 2)
	assert.NotNil(t, buckets[models.AppointmentStatusCompleted])
	assert.Empty(t, buckets[models.AppointmentStatusCompleted])

	counts := CountByStatus(list)
	assert.Equal(t, 1, counts[models.AppointmentStatusPending])
	assert.Equal(t, 2, counts[models.AppointmentStatusConfirmed])
	assert.Equal(t, 0, counts[models.AppointmentStatusCancelled])
}

func TestOnDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	list := []models.Appointment{
		// 2024-03-05 20:00 UTC is already March 6 in loc.
		appointmentAt(1, models.AppointmentStatusConfirmed, time.Date(2024, time.March, 5, 20, 0, 0, 0, time.UTC)),
		appointmentAt(2, models.AppointmentStatusConfirmed, time.Date(2024, time.March, 5, 3, 0, 0, 0, time.UTC)),
	}

	sessions := OnDate(list, time.Date(2024, time.March, 6, 0, 0, 0, 0, loc), loc)
	assert.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].ID)
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	list := []models.Appointment{
		appointmentAt(1, models.AppointmentStatusConfirmed, now.Add(48*time.Hour)),
		appointmentAt(2, models.AppointmentStatusConfirmed, now.Add(-time.Hour)),
		appointmentAt(3, models.AppointmentStatusConfirmed, now.Add(2*time.Hour)),
	}

	upcoming := Upcoming(list, now)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, 3, upcoming[0].ID)
	assert.Equal(t, 1, upcoming[1].ID)
}
