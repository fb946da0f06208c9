package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"elysian/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to approved", from: model.StatusPending, to: model.StatusApproved, want: true},
		{name: "pending to rejected", from: model.StatusPending, to: model.StatusRejected, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to checked in skips approval", from: model.StatusPending, to: model.StatusCheckedIn, want: false},
		{name: "approved to checked in", from: model.StatusApproved, to: model.StatusCheckedIn, want: true},
		{name: "approved to cancelled", from: model.StatusApproved, to: model.StatusCancelled, want: true},
		{name: "approved to rejected", from: model.StatusApproved, to: model.StatusRejected, want: false},
		{name: "checked in to checked out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, want: true},
		{name: "checked in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, want: false},
		{name: "checked out is terminal", from: model.StatusCheckedOut, to: model.StatusCheckedIn, want: false},
		{name: "rejected is terminal", from: model.StatusRejected, to: model.StatusApproved, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusApproved, want: false},
		{name: "same status is not a transition", from: model.StatusApproved, to: model.StatusApproved, want: false},
		{name: "unknown status", from: "bogus", to: model.StatusApproved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, model.IsActive(model.StatusPending))
	assert.True(t, model.IsActive(model.StatusApproved))
	assert.True(t, model.IsActive(model.StatusCheckedIn))
	assert.False(t, model.IsActive(model.StatusCheckedOut))
	assert.False(t, model.IsActive(model.StatusRejected))
	assert.False(t, model.IsActive(model.StatusCancelled))
}

func TestIsHolding(t *testing.T) {
	assert.True(t, model.IsHolding(model.StatusApproved))
	assert.True(t, model.IsHolding(model.StatusCheckedIn))
	assert.False(t, model.IsHolding(model.StatusPending))
	assert.False(t, model.IsHolding(model.StatusCheckedOut))
}

func TestAcceptsPayments(t *testing.T) {
	assert.True(t, model.AcceptsPayments(model.StatusApproved))
	assert.True(t, model.AcceptsPayments(model.StatusCheckedIn))
	assert.True(t, model.AcceptsPayments(model.StatusCheckedOut))
	assert.False(t, model.AcceptsPayments(model.StatusPending))
	assert.False(t, model.AcceptsPayments(model.StatusRejected))
	assert.False(t, model.AcceptsPayments(model.StatusCancelled))
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "one night", checkIn: day(10), checkOut: day(11), want: 1},
		{name: "three nights", checkIn: day(10), checkOut: day(13), want: 3},
		{name: "same day bills one night", checkIn: day(10), checkOut: day(10), want: 1},
		{name: "partial day rounds up", checkIn: day(10), checkOut: day(11).Add(6 * time.Hour), want: 2},
		{name: "sub day stay bills one night", checkIn: day(10).Add(9 * time.Hour), checkOut: day(10).Add(18 * time.Hour), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNightsAcrossDSTFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// Nov 2 2025 lasts 25 hours in New York; the stay is still two nights.
	checkIn := time.Date(2025, time.November, 1, 0, 0, 0, 0, loc)
	checkOut := time.Date(2025, time.November, 3, 0, 0, 0, 0, loc)

	assert.Equal(t, 2, model.Nights(checkIn, checkOut))

	// And the 23-hour spring-forward day must not lose one.
	checkIn = time.Date(2025, time.March, 8, 0, 0, 0, 0, loc)
	checkOut = time.Date(2025, time.March, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, 2, model.Nights(checkIn, checkOut))
}
