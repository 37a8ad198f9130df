package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cleanmatch/internal/domains/booking/model"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
		model.StatusConfirmed: {model.StatusCompleted, model.StatusCancelled},
		model.StatusCompleted: {},
		model.StatusCancelled: {},
	}

	isAllowed := func(from, to model.Status) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	// Check every pair so nothing outside the table is ever permitted.
	for _, from := range model.Statuses() {
		for _, to := range model.Statuses() {
			got := from.CanTransitionTo(to)
			want := isAllowed(from, to)

			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestStatus_SelfTransitionNotInTable(t *testing.T) {
	for _, status := range model.Statuses() {
		assert.False(t, status.CanTransitionTo(status), "self transition for %s", status)
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusConfirmed.IsTerminal())
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.True(t, model.Status("bogus").IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	for _, status := range model.Statuses() {
		assert.True(t, status.IsValid(), "status %s", status)
	}

	assert.False(t, model.Status("").IsValid())
	assert.False(t, model.Status("PENDING").IsValid())
	assert.False(t, model.Status("in_progress").IsValid())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Status
		wantErr bool
	}{
		{input: "pending", want: model.StatusPending},
		{input: "confirmed", want: model.StatusConfirmed},
		{input: "completed", want: model.StatusCompleted},
		{input: "cancelled", want: model.StatusCancelled},
		{input: "canceled", wantErr: true},
		{input: "Pending", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParseStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBooking_Reviewed(t *testing.T) {
	booking := model.Booking{}
	assert.False(t, booking.Reviewed())

	rating := 5
	booking.Rating = &rating
	assert.True(t, booking.Reviewed())
}
