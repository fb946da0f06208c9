package model

import (
	"time"

	"elysian/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldUUID      = "uuid"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
)

const (
	ChargeTableName  = "room_charges"
	ChargeEntityName = "room_charge"
)

const (
	MethodCash         = "cash"
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodOnline       = "online"
)

// BalanceTolerance absorbs currency rounding when checking a payment
// against the outstanding balance. The source data used 0.01–0.05 in
// different places; 0.05 is the single constant used everywhere here.
const BalanceTolerance = 0.05

// OutstandingEpsilon filters float noise out of outstanding-balance
// listings: balances at or below it count as settled.
const OutstandingEpsilon = 0.01

type Payment struct {
	ID         string  `db:"id"`
	UUID       string  `db:"uuid"`
	BookingID  string  `db:"booking_id"`
	Amount     float64 `db:"amount"`
	Method     string  `db:"method"`
	Notes      string  `db:"notes"`
	RecordedBy string  `db:"recorded_by"`
	model.Metadata
}

// RoomCharge is an ancillary charge (dining, laundry) attached to an
// in-house stay.
type RoomCharge struct {
	ID         string  `db:"id"`
	UUID       string  `db:"uuid"`
	BookingID  string  `db:"booking_id"`
	ItemName   string  `db:"item_name"`
	Amount     float64 `db:"amount"`
	Category   string  `db:"category"`
	RecordedBy string  `db:"recorded_by"`
	model.Metadata
}

// OutstandingBalance is one row of the receivables listing.
type OutstandingBalance struct {
	BookingID    string    `db:"booking_id"`
	BookingUUID  string    `db:"booking_uuid"`
	GuestName    string    `db:"guest_name"`
	RoomNumber   string    `db:"room_number"`
	Status       string    `db:"status"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Payable      float64   `db:"payable"`
	Paid         float64   `db:"paid"`
	Balance      float64   `db:"balance"`
}

// MethodStat is the per-method slice of the payment statistics.
type MethodStat struct {
	Method string  `db:"method"`
	Total  float64 `db:"total"`
	Count  int     `db:"count"`
}
