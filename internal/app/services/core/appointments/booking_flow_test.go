package appointments

import (
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartBooking(t *testing.T) {
	t.Run("user may book", func(t *testing.T) {
		flow, err := StartBooking(constvars.RoleUser, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, DefaultTab, flow.ActiveTab)
		assert.False(t, flow.Date().IsZero())
	})

	t.Run("therapist may not", func(t *testing.T) {
		_, err := StartBooking(constvars.RoleTherapist, time.UTC)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientBookingOnlyForUsers, exceptions.ClientMessage(err))
	})
}

func TestBookingFlowRequest(t *testing.T) {
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	t.Run("incomplete selection", func(t *testing.T) {
		flow, err := StartBooking(constvars.RoleUser, time.UTC)
		require.NoError(t, err)
		flow.SelectDate(day)
		flow.SelectSlot(TimeSlots[0])

		_, err = flow.Request()
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientIncompleteSelection, exceptions.ClientMessage(err))
	})

	t.Run("missing date", func(t *testing.T) {
		flow, err := StartBooking(constvars.RoleUser, time.UTC)
		require.NoError(t, err)
		flow.SelectTherapist(3)
		flow.SelectDate(time.Time{})
		flow.SelectSlot(TimeSlots[0])

		_, err = flow.Request()
		assert.Error(t, err)
	})

	t.Run("complete selection builds the request and resets", func(t *testing.T) {
		flow, err := StartBooking(constvars.RoleUser, time.UTC)
		require.NoError(t, err)
		flow.SelectTherapist(3)
		flow.SelectDate(day)
		flow.SelectSlot("01:00 PM - 02:00 PM")

		request, err := flow.Request()
		require.NoError(t, err)
		assert.Equal(t, 3, request.TherapistID)
		assert.Equal(t, time.Date(2024, time.March, 5, 13, 0, 0, 0, time.UTC), request.ScheduledTime.Time)

		flow.Complete()
		assert.Empty(t, flow.Slot())
		assert.Equal(t, string(models.AppointmentStatusPending), flow.ActiveTab)
		_, err = flow.Request()
		assert.Error(t, err)
	})
}
