package model

import (
	"time"

	"elysian/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldPhoneNumber = "phone_number"
	FieldEmail       = "email"
	FieldTelegram    = "telegram"
	FieldIsVIP       = "is_vip"
	FieldNotes       = "notes"
)

// Guest identity is keyed by phone number: the first booking from a phone
// number creates the guest, later bookings attach to it.
type Guest struct {
	ID          string `db:"id"`
	FullName    string `db:"full_name"`
	PhoneNumber string `db:"phone_number"`
	Email       string `db:"email"`
	Telegram    string `db:"telegram"`
	IsVIP       bool   `db:"is_vip"`
	Notes       string `db:"notes"`
	model.Metadata
}

// GuestWithStats augments a guest row with stay aggregates for the staff
// listing.
type GuestWithStats struct {
	Guest
	StayCount  int     `db:"stay_count"`
	TotalSpend float64 `db:"total_spend"`
}

// BookingHistory is one stay row on the guest detail page.
type BookingHistory struct {
	BookingID    string    `db:"booking_id"`
	RoomNumber   string    `db:"room_number"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Status       string    `db:"status"`
	TotalPrice   float64   `db:"total_price"`
}
