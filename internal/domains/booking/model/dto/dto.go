package dto

import (
	"time"

	"elysian/internal/domains/booking/model"
	guestDto "elysian/internal/domains/guest/model/dto"
	"elysian/shared"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	gModel "elysian/shared/model"
	"elysian/shared/timezone"

	"github.com/google/uuid"
)

// CreateWalkInRequest creates a booking at the front desk: the booking is
// born approved, the room goes occupied, and the stated payment is
// recorded, all in one transaction.
type CreateWalkInRequest struct {
	Guest           guestDto.GuestContact `json:"guest" validate:"required"`
	RoomID          string                `json:"room_id" validate:"required,uuid"`
	CheckInDate     string                `json:"check_in_date" validate:"required,staydate"`
	CheckOutDate    string                `json:"check_out_date" validate:"required,staydate"`
	PaymentAmount   float64               `json:"payment_amount" validate:"required,gt=0"`
	PaymentMethod   string                `json:"payment_method" validate:"required,oneof=cash card bank_transfer online"`
	SpecialRequests string                `json:"special_requests" validate:"omitempty,max=500"`
	Notes           string                `json:"notes" validate:"omitempty,max=500"`
}

// CreateOnlineRequest is the public booking request form.
type CreateOnlineRequest struct {
	Guest           guestDto.GuestContact `json:"guest" validate:"required"`
	RoomID          string                `json:"room_id" validate:"required,uuid"`
	CheckInDate     string                `json:"check_in_date" validate:"required,staydate"`
	CheckOutDate    string                `json:"check_out_date" validate:"required,staydate"`
	SpecialRequests string                `json:"special_requests" validate:"omitempty,max=500"`
}

// NewBooking assembles a booking model with a server-side computed price.
func NewBooking(guestID string, contact guestDto.GuestContact, roomID string, checkIn, checkOut time.Time, status, source string, basePrice float64, specialRequests, notes, user string) model.Booking {
	nights := model.Nights(checkIn, checkOut)

	return model.Booking{
		ID:              uuid.NewString(),
		UUID:            uuid.NewString(),
		GuestID:         guestID,
		GuestName:       contact.FullName,
		PhoneNumber:     contact.PhoneNumber,
		Telegram:        contact.Telegram,
		RoomID:          roomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Status:          status,
		Source:          source,
		TotalPrice:      float64(nights) * basePrice,
		SpecialRequests: specialRequests,
		Notes:           notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID              string  `json:"id"`
	UUID            string  `json:"uuid"`
	GuestID         string  `json:"guest_id"`
	GuestName       string  `json:"guest_name"`
	PhoneNumber     string  `json:"phone_number"`
	Telegram        string  `json:"telegram,omitempty"`
	RoomID          string  `json:"room_id"`
	RoomNumber      string  `json:"room_number"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Nights          int     `json:"nights"`
	Status          string  `json:"status"`
	Source          string  `json:"source"`
	TotalPrice      float64 `json:"total_price"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.UUID = mod.UUID
	r.GuestID = mod.GuestID
	r.GuestName = mod.GuestName
	r.PhoneNumber = mod.PhoneNumber
	r.Telegram = mod.Telegram
	r.RoomID = mod.RoomID
	r.RoomNumber = mod.RoomNumber
	r.CheckInDate = timezone.Format(mod.CheckInDate, constant.StayDateFormat)
	r.CheckOutDate = timezone.Format(mod.CheckOutDate, constant.StayDateFormat)
	r.Nights = model.Nights(mod.CheckInDate, mod.CheckOutDate)
	r.Status = mod.Status
	r.Source = mod.Source
	r.TotalPrice = mod.TotalPrice
	r.SpecialRequests = mod.SpecialRequests
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
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

// BookingStatusResponse is the public summary keyed by the booking's opaque
// reference. Internal ids and staff notes are not exposed.
type BookingStatusResponse struct {
	UUID         string  `json:"uuid"`
	GuestName    string  `json:"guest_name"`
	RoomNumber   string  `json:"room_number"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
}

func (r *BookingStatusResponse) FromModel(mod model.Booking) {
	r.UUID = mod.UUID
	r.GuestName = mod.GuestName
	r.RoomNumber = mod.RoomNumber
	r.CheckInDate = timezone.Format(mod.CheckInDate, constant.StayDateFormat)
	r.CheckOutDate = timezone.Format(mod.CheckOutDate, constant.StayDateFormat)
	r.Status = mod.Status
	r.TotalPrice = mod.TotalPrice
}
