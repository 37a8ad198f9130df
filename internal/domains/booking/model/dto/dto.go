package dto

import (
	"time"

	"cleanmatch/internal/domains/booking/model"
	"cleanmatch/shared"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	gModel "cleanmatch/shared/model"
	"cleanmatch/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CleanerID       string `json:"cleaner_id"       validate:"required"`
	HomeOwnerID     string `json:"home_owner_id"    validate:"required"`
	ServiceID       string `json:"service_id"       validate:"required"`
	ScheduledDate   string `json:"scheduled_date"   validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	Notes           string `json:"notes"            validate:"omitempty"`
}

// ToModel builds the booking record. The total price is computed by the
// caller from the service's hourly base price and frozen here.
func (c *CreateBookingRequest) ToModel(user string, totalPrice float64) (model.Booking, error) {
	scheduledDate, err := timezone.Parse(constant.DateFormat, c.ScheduledDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:              uuid.NewString(),
		CleanerID:       c.CleanerID,
		HomeOwnerID:     c.HomeOwnerID,
		ServiceID:       c.ServiceID,
		Status:          model.StatusPending,
		ScheduledDate:   scheduledDate,
		DurationMinutes: c.DurationMinutes,
		TotalPrice:      totalPrice,
		Notes:           c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RescheduleBookingRequest struct {
	ScheduledDate string `json:"scheduled_date" validate:"required"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

type AddReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"omitempty,max=2000"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	CleanerID       string  `json:"cleaner_id"`
	HomeOwnerID     string  `json:"home_owner_id"`
	ServiceID       string  `json:"service_id"`
	Status          string  `json:"status"`
	ScheduledDate   string  `json:"scheduled_date"`
	DurationMinutes int     `json:"duration_minutes"`
	TotalPrice      float64 `json:"total_price"`
	Notes           string  `json:"notes,omitempty"`
	Rating          *int    `json:"rating,omitempty"`
	Review          *string `json:"review,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CleanerID = model.CleanerID
	r.HomeOwnerID = model.HomeOwnerID
	r.ServiceID = model.ServiceID
	r.Status = model.Status.String()
	r.ScheduledDate = timezone.Format(model.ScheduledDate, constant.DateFormat)
	r.DurationMinutes = model.DurationMinutes
	r.TotalPrice = model.TotalPrice
	r.Notes = model.Notes
	r.Rating = model.Rating
	r.Review = model.Review
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to Kafka on lifecycle changes.
type BookingEvent struct {
	BookingID   string    `json:"booking_id"`
	CleanerID   string    `json:"cleaner_id"`
	HomeOwnerID string    `json:"home_owner_id"`
	ServiceID   string    `json:"service_id"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewBookingEvent(booking model.Booking) BookingEvent {
	return BookingEvent{
		BookingID:   booking.ID,
		CleanerID:   booking.CleanerID,
		HomeOwnerID: booking.HomeOwnerID,
		ServiceID:   booking.ServiceID,
		Status:      booking.Status.String(),
		OccurredAt:  timezone.Now(),
	}
}
