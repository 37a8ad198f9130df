package model

import (
	"time"

	"cleanmatch/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCleanerID       = "cleaner_id"
	FieldHomeOwnerID     = "home_owner_id"
	FieldServiceID       = "service_id"
	FieldStatus          = "status"
	FieldScheduledDate   = "scheduled_date"
	FieldDurationMinutes = "duration_minutes"
	FieldTotalPrice      = "total_price"
	FieldNotes           = "notes"
	FieldRating          = "rating"
	FieldReview          = "review"
)

// Booking is one scheduled cleaning engagement between a cleaner and a home
// owner. TotalPrice is computed once at creation and never recomputed, and
// Rating/Review are set together, at most once, after completion.
type Booking struct {
	ID              string    `db:"id"`
	CleanerID       string    `db:"cleaner_id"`
	HomeOwnerID     string    `db:"home_owner_id"`
	ServiceID       string    `db:"service_id"`
	Status          Status    `db:"status"`
	ScheduledDate   time.Time `db:"scheduled_date"`
	DurationMinutes int       `db:"duration_minutes"`
	TotalPrice      float64   `db:"total_price"`
	Notes           string    `db:"notes"`
	Rating          *int      `db:"rating"`
	Review          *string   `db:"review"`
	model.Metadata
}

// Reviewed reports whether a post-completion review has been attached.
func (b *Booking) Reviewed() bool {
	return b.Rating != nil
}
