package dto

import (
	bookingModel "elysian/internal/domains/booking/model"
	"elysian/internal/domains/payment/model"
	"elysian/shared"
	"elysian/shared/constant"
	gModel "elysian/shared/model"
	"elysian/shared/timezone"

	"github.com/google/uuid"
)

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,oneof=cash card bank_transfer online"`
	Notes  string  `json:"notes" validate:"omitempty,max=500"`
}

func (r *RecordPaymentRequest) ToModel(bookingID, user string) model.Payment {
	return model.Payment{
		ID:         uuid.NewString(),
		UUID:       uuid.NewString(),
		BookingID:  bookingID,
		Amount:     r.Amount,
		Method:     r.Method,
		Notes:      r.Notes,
		RecordedBy: user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RecordChargeRequest struct {
	ItemName string  `json:"item_name" validate:"required,max=100"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category" validate:"omitempty,max=50"`
}

func (r *RecordChargeRequest) ToModel(bookingID, user string) model.RoomCharge {
	return model.RoomCharge{
		ID:         uuid.NewString(),
		UUID:       uuid.NewString(),
		BookingID:  bookingID,
		ItemName:   r.ItemName,
		Amount:     r.Amount,
		Category:   r.Category,
		RecordedBy: user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PaymentResponse struct {
	ID         string  `json:"id"`
	UUID       string  `json:"uuid"`
	BookingID  string  `json:"booking_id"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	Notes      string  `json:"notes,omitempty"`
	RecordedBy string  `json:"recorded_by"`
	CreatedAt  string  `json:"created_at"`
}

func (r *PaymentResponse) FromModel(mod model.Payment) {
	r.ID = mod.ID
	r.UUID = mod.UUID
	r.BookingID = mod.BookingID
	r.Amount = mod.Amount
	r.Method = mod.Method
	r.Notes = mod.Notes
	r.RecordedBy = mod.RecordedBy
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

type RoomChargeResponse struct {
	ID         string  `json:"id"`
	UUID       string  `json:"uuid"`
	BookingID  string  `json:"booking_id"`
	ItemName   string  `json:"item_name"`
	Amount     float64 `json:"amount"`
	Category   string  `json:"category,omitempty"`
	RecordedBy string  `json:"recorded_by"`
	CreatedAt  string  `json:"created_at"`
}

func (r *RoomChargeResponse) FromModel(mod model.RoomCharge) {
	r.ID = mod.ID
	r.UUID = mod.UUID
	r.BookingID = mod.BookingID
	r.ItemName = mod.ItemName
	r.Amount = mod.Amount
	r.Category = mod.Category
	r.RecordedBy = mod.RecordedBy
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetRoomChargesResponse struct {
	Charges   []RoomChargeResponse `json:"charges"`
	TotalData int                  `json:"total_data"`
}

func (r *GetRoomChargesResponse) FromModels(models []model.RoomCharge) {
	r.TotalData = len(models)

	r.Charges = make([]RoomChargeResponse, len(models))
	for i, mod := range models {
		r.Charges[i].FromModel(mod)
	}
}

type OutstandingBalanceResponse struct {
	BookingID    string  `json:"booking_id"`
	BookingUUID  string  `json:"booking_uuid"`
	GuestName    string  `json:"guest_name"`
	RoomNumber   string  `json:"room_number"`
	Status       string  `json:"status"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Payable      float64 `json:"payable"`
	Paid         float64 `json:"paid"`
	Balance      float64 `json:"balance"`
}

type GetOutstandingBalancesResponse struct {
	Balances []OutstandingBalanceResponse `json:"balances"`
}

func (r *GetOutstandingBalancesResponse) FromModels(models []model.OutstandingBalance) {
	r.Balances = make([]OutstandingBalanceResponse, len(models))
	for i, mod := range models {
		r.Balances[i] = OutstandingBalanceResponse{
			BookingID:    mod.BookingID,
			BookingUUID:  mod.BookingUUID,
			GuestName:    mod.GuestName,
			RoomNumber:   mod.RoomNumber,
			Status:       mod.Status,
			CheckInDate:  timezone.Format(mod.CheckInDate, constant.StayDateFormat),
			CheckOutDate: timezone.Format(mod.CheckOutDate, constant.StayDateFormat),
			Payable:      mod.Payable,
			Paid:         mod.Paid,
			Balance:      mod.Balance,
		}
	}
}

// BookingLedgerResponse is the full money picture of one booking: the base
// price, every charge, every payment, and the derived balance.
type BookingLedgerResponse struct {
	BookingID   string               `json:"booking_id"`
	BookingUUID string               `json:"booking_uuid"`
	Status      string               `json:"status"`
	TotalPrice  float64              `json:"total_price"`
	Charges     []RoomChargeResponse `json:"charges"`
	Payments    []PaymentResponse    `json:"payments"`
	Payable     float64              `json:"payable"`
	Paid        float64              `json:"paid"`
	Balance     float64              `json:"balance"`
}

func (r *BookingLedgerResponse) FromModels(booking bookingModel.Booking, payments []model.Payment, charges []model.RoomCharge) {
	r.BookingID = booking.ID
	r.BookingUUID = booking.UUID
	r.Status = booking.Status
	r.TotalPrice = booking.TotalPrice

	r.Payable = booking.TotalPrice

	r.Charges = make([]RoomChargeResponse, len(charges))
	for i, mod := range charges {
		r.Charges[i].FromModel(mod)
		r.Payable += mod.Amount
	}

	r.Payments = make([]PaymentResponse, len(payments))
	for i, mod := range payments {
		r.Payments[i].FromModel(mod)
		r.Paid += mod.Amount
	}

	r.Balance = r.Payable - r.Paid
}

type MethodStatResponse struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}

type PaymentStatsResponse struct {
	TotalCollected float64              `json:"total_collected"`
	PaymentCount   int                  `json:"payment_count"`
	ByMethod       []MethodStatResponse `json:"by_method"`
}

func (r *PaymentStatsResponse) FromModels(total float64, count int, methods []model.MethodStat) {
	r.TotalCollected = total
	r.PaymentCount = count

	r.ByMethod = make([]MethodStatResponse, len(methods))
	for i, m := range methods {
		r.ByMethod[i] = MethodStatResponse{Method: m.Method, Total: m.Total, Count: m.Count}
	}
}
