package model

import (
	"slices"
	"time"

	"elysian/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldUUID         = "uuid"
	FieldGuestID      = "guest_id"
	FieldGuestName    = "guest_name"
	FieldPhoneNumber  = "phone_number"
	FieldTelegram     = "telegram"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldSource       = "source"
	FieldTotalPrice   = "total_price"
)

const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	SourceOnline = "online"
	SourceWalkIn = "walk-in"
)

// ActiveStatuses are the statuses that hold a room against overlapping
// dates. Pending is included on purpose: a pending online request blocks
// the room until staff disposition, as an overbooking guard.
var ActiveStatuses = []string{StatusPending, StatusApproved, StatusCheckedIn}

// HoldingStatuses are the statuses under which the room itself is occupied.
var HoldingStatuses = []string{StatusApproved, StatusCheckedIn}

// transitions is the lifecycle state machine. Missing keys are terminal.
var transitions = map[string][]string{
	StatusPending:   {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// IsActive reports whether the status holds a room against overlapping
// dates.
func IsActive(status string) bool {
	return slices.Contains(ActiveStatuses, status)
}

// IsHolding reports whether the status keeps the room occupied.
func IsHolding(status string) bool {
	return slices.Contains(HoldingStatuses, status)
}

// Nights computes the billable night count for a half-open stay interval.
// Same-day or sub-day stays still bill one night. Counts calendar days, not
// wall-clock hours: a stay across a DST fall-back day must not bill an extra
// night for the day that lasts 25 hours.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	nights := int(out.Sub(in) / (24 * time.Hour))

	// A check-out later in the day than the check-in starts another night.
	inClock := checkIn.Hour()*3600 + checkIn.Minute()*60 + checkIn.Second()
	outClock := checkOut.Hour()*3600 + checkOut.Minute()*60 + checkOut.Second()

	if outClock > inClock {
		nights++
	}

	if nights < 1 {
		return 1
	}

	return nights
}

// AcceptsPayments reports whether money may still be recorded against the
// booking. Checked-out stays accept late settlements of an open balance.
func AcceptsPayments(status string) bool {
	return status == StatusApproved || status == StatusCheckedIn || status == StatusCheckedOut
}

type Booking struct {
	ID              string    `db:"id"`
	UUID            string    `db:"uuid"`
	GuestID         string    `db:"guest_id"`
	GuestName       string    `db:"guest_name"`
	PhoneNumber     string    `db:"phone_number"`
	Telegram        string    `db:"telegram"`
	RoomID          string    `db:"room_id"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	Status          string    `db:"status"`
	Source          string    `db:"source"`
	TotalPrice      float64   `db:"total_price"`
	SpecialRequests string    `db:"special_requests"`
	Notes           string    `db:"notes"`

	RoomNumber string `db:"room_number" table:"rooms" column:"room_number"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = bookings.room_id"
}
