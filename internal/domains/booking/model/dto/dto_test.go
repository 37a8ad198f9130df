package dto_test

import (
	"testing"
	"time"

	"cleanmatch/internal/domains/booking/model"
	"cleanmatch/internal/domains/booking/model/dto"
	gModel "cleanmatch/shared/model"
	"cleanmatch/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		CleanerID:       "cleaner-1",
		HomeOwnerID:     "owner-1",
		ServiceID:       "service-1",
		ScheduledDate:   timezone.Now().Add(48 * time.Hour).Format(time.RFC3339),
		DurationMinutes: 90,
		Notes:           "second floor only",
	}

	userID := "owner-1"
	totalPrice := 60.0

	booking, err := req.ToModel(userID, totalPrice)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.CleanerID, booking.CleanerID)
	assert.Equal(t, req.HomeOwnerID, booking.HomeOwnerID)
	assert.Equal(t, req.ServiceID, booking.ServiceID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, req.DurationMinutes, booking.DurationMinutes)
	assert.Equal(t, totalPrice, booking.TotalPrice)
	assert.Equal(t, req.Notes, booking.Notes)
	assert.Nil(t, booking.Rating)
	assert.Nil(t, booking.Review)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		CleanerID:       "cleaner-1",
		HomeOwnerID:     "owner-1",
		ServiceID:       "service-1",
		ScheduledDate:   "tomorrow afternoon",
		DurationMinutes: 90,
	}

	_, err := req.ToModel("owner-1", 60.0)

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	rating := 5
	review := "spotless"

	booking := model.Booking{
		ID:              "booking-1",
		CleanerID:       "cleaner-1",
		HomeOwnerID:     "owner-1",
		ServiceID:       "service-1",
		Status:          model.StatusCompleted,
		ScheduledDate:   now,
		DurationMinutes: 120,
		TotalPrice:      80,
		Notes:           "bring supplies",
		Rating:          &rating,
		Review:          &review,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "owner-1",
			ModifiedBy: "cleaner-1",
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, booking.Status.String(), response.Status)
	assert.Equal(t, booking.DurationMinutes, response.DurationMinutes)
	assert.Equal(t, booking.TotalPrice, response.TotalPrice)
	assert.Equal(t, booking.Notes, response.Notes)
	assert.Equal(t, &rating, response.Rating)
	assert.Equal(t, &review, response.Review)
	assert.NotEmpty(t, response.ScheduledDate)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "booking-1", Status: model.StatusPending},
		{ID: "booking-2", Status: model.StatusConfirmed},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 15, 10)

	assert.Equal(t, 15, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, "booking-1", response.Bookings[0].ID)
	assert.Equal(t, model.StatusConfirmed.String(), response.Bookings[1].Status)
}

func TestNewBookingEvent(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-1",
		CleanerID:   "cleaner-1",
		HomeOwnerID: "owner-1",
		ServiceID:   "service-1",
		Status:      model.StatusConfirmed,
	}

	event := dto.NewBookingEvent(booking)

	assert.Equal(t, booking.ID, event.BookingID)
	assert.Equal(t, booking.CleanerID, event.CleanerID)
	assert.Equal(t, booking.HomeOwnerID, event.HomeOwnerID)
	assert.Equal(t, booking.ServiceID, event.ServiceID)
	assert.Equal(t, booking.Status.String(), event.Status)
	assert.False(t, event.OccurredAt.IsZero(), "expected OccurredAt to be set")
}
