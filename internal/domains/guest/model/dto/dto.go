package dto

import (
	"elysian/internal/domains/guest/model"
	"elysian/shared"
	"elysian/shared/constant"
	gDto "elysian/shared/dto"
	gModel "elysian/shared/model"
	"elysian/shared/timezone"

	"github.com/google/uuid"
)

// GuestContact is the denormalized contact block shared by walk-in and
// online booking requests.
type GuestContact struct {
	FullName    string `json:"full_name" validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	Telegram    string `json:"telegram" validate:"omitempty,max=100"`
}

func (c *GuestContact) ToModel(user string) model.Guest {
	return model.Guest{
		ID:          uuid.NewString(),
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Telegram:    c.Telegram,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Email    string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Telegram string `db:"telegram" json:"telegram" validate:"omitempty,max=100"`
	Notes    string `db:"notes" json:"notes" validate:"omitempty,max=500"`
}

type GuestResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Telegram    string `json:"telegram"`
	IsVIP       bool   `json:"is_vip"`
	Notes       string `json:"notes"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(mod model.Guest) {
	r.ID = mod.ID
	r.FullName = mod.FullName
	r.PhoneNumber = mod.PhoneNumber
	r.Email = mod.Email
	r.Telegram = mod.Telegram
	r.IsVIP = mod.IsVIP
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GuestWithStatsResponse struct {
	GuestResponse
	StayCount  int     `json:"stay_count"`
	TotalSpend float64 `json:"total_spend"`
}

type GetGuestsResponse struct {
	Guests    []GuestWithStatsResponse `json:"guests"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.GuestWithStats, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestWithStatsResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod.Guest)
		r.Guests[i].StayCount = mod.StayCount
		r.Guests[i].TotalSpend = mod.TotalSpend
	}
}

type BookingHistoryResponse struct {
	BookingID    string  `json:"booking_id"`
	RoomNumber   string  `json:"room_number"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
}

type GuestDetailResponse struct {
	GuestResponse
	Bookings []BookingHistoryResponse `json:"bookings"`
}

func (r *GuestDetailResponse) FromModel(mod model.Guest, history []model.BookingHistory) {
	r.GuestResponse.FromModel(mod)

	r.Bookings = make([]BookingHistoryResponse, len(history))
	for i, h := range history {
		r.Bookings[i] = BookingHistoryResponse{
			BookingID:    h.BookingID,
			RoomNumber:   h.RoomNumber,
			CheckInDate:  timezone.Format(h.CheckInDate, constant.StayDateFormat),
			CheckOutDate: timezone.Format(h.CheckOutDate, constant.StayDateFormat),
			Status:       h.Status,
			TotalPrice:   h.TotalPrice,
		}
	}
}
