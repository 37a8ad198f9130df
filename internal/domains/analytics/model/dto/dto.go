package dto

import (
	"time"

	bookingModel "cleanmatch/internal/domains/booking/model"
	"cleanmatch/shared/constant"
	gDto "cleanmatch/shared/dto"
	"cleanmatch/shared/failure"
	"cleanmatch/shared/timezone"
)

// DateRange bounds a report by scheduled date. Both ends are optional and
// inclusive.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange reads YYYY-MM-DD boundaries. The end date is widened to the
// last instant of that day so the range stays inclusive.
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	var rng DateRange

	if startDate != "" {
		start, err := timezone.Parse(constant.DateOnlyFormat, startDate)
		if err != nil {
			return rng, failure.BadRequestFromString("start_date must be formatted as YYYY-MM-DD")
		}

		rng.Start = &start
	}

	if endDate != "" {
		end, err := timezone.Parse(constant.DateOnlyFormat, endDate)
		if err != nil {
			return rng, failure.BadRequestFromString("end_date must be formatted as YYYY-MM-DD")
		}

		end = end.Add(24*time.Hour - time.Nanosecond)
		rng.End = &end
	}

	if rng.Start != nil && rng.End != nil && rng.End.Before(*rng.Start) {
		return rng, failure.BadRequestFromString("end_date must not be before start_date")
	}

	return rng, nil
}

// Filters translates the range into scheduled-date bounds, optionally scoped
// to one actor column (cleaner_id or home_owner_id).
func (r DateRange) Filters(actorField, actorID string) gDto.FilterGroup {
	filters := []any{}

	if actorField != "" {
		filters = append(filters, gDto.Filter{
			Field:    actorField,
			Operator: gDto.FilterOperatorEq,
			Value:    actorID,
			Table:    bookingModel.TableName,
		})
	}

	if r.Start != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "scheduled_date_start",
			Field:    bookingModel.FieldScheduledDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *r.Start,
			Table:    bookingModel.TableName,
		})
	}

	if r.End != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "scheduled_date_end",
			Field:    bookingModel.FieldScheduledDate,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *r.End,
			Table:    bookingModel.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

type CleanerReportResponse struct {
	CleanerID         string         `json:"cleaner_id"`
	TotalBookings     int            `json:"total_bookings"`
	CompletedBookings int            `json:"completed_bookings"`
	CancelledBookings int            `json:"cancelled_bookings"`
	TotalEarnings     float64        `json:"total_earnings"`
	AverageRating     float64        `json:"average_rating"`
	CountsByStatus    map[string]int `json:"counts_by_status"`
}

type HomeOwnerReportResponse struct {
	HomeOwnerID       string         `json:"home_owner_id"`
	TotalBookings     int            `json:"total_bookings"`
	CompletedBookings int            `json:"completed_bookings"`
	CancelledBookings int            `json:"cancelled_bookings"`
	TotalSpent        float64        `json:"total_spent"`
	CountsByStatus    map[string]int `json:"counts_by_status"`
}

type PlatformReportResponse struct {
	TotalBookings       int            `json:"total_bookings"`
	CompletedBookings   int            `json:"completed_bookings"`
	CancelledBookings   int            `json:"cancelled_bookings"`
	TotalRevenue        float64        `json:"total_revenue"`
	AverageBookingValue float64        `json:"average_booking_value"`
	CountsByStatus      map[string]int `json:"counts_by_status"`
}
