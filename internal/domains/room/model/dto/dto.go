package dto

import (
	"elysian/internal/domains/room/model"
	"elysian/shared"
	gDto "elysian/shared/dto"
	gModel "elysian/shared/model"
	"elysian/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Floor      int    `json:"floor" validate:"omitempty,gte=0"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomTypeID: c.RoomTypeID,
		Floor:      c.Floor,
		Status:     model.StatusAvailable,
		Notes:      c.Notes,
		Lifecycle: gModel.Lifecycle{
			Lifecycle: gModel.LifecycleActive,
		},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest deliberately has no status field: room status belongs to
// the booking lifecycle and housekeeping actions.
type UpdateRoomRequest struct {
	RoomNumber string `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
	Floor      int    `db:"floor" json:"floor" validate:"omitempty,gte=0"`
	Notes      string `db:"notes" json:"notes" validate:"omitempty,max=500"`
	Lifecycle  string `db:"lifecycle" json:"lifecycle" validate:"omitempty,oneof=active inactive"`
}

// AvailableRoomsRequest carries the optional stay dates of a public
// availability query. Both dates must be given together.
type AvailableRoomsRequest struct {
	CheckInDate  string `json:"check_in_date" validate:"omitempty,staydate"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,staydate"`
}

type RoomResponse struct {
	ID                string  `json:"id"`
	RoomNumber        string  `json:"room_number"`
	RoomTypeID        string  `json:"room_type_id"`
	RoomTypeName      string  `json:"room_type_name"`
	RoomTypeBasePrice float64 `json:"room_type_base_price"`
	Floor             int     `json:"floor"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes"`
	Lifecycle         string  `json:"lifecycle"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.RoomTypeID = mod.RoomTypeID
	r.RoomTypeName = mod.RoomTypeName
	r.RoomTypeBasePrice = mod.RoomTypeBasePrice
	r.Floor = mod.Floor
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.Lifecycle = mod.Lifecycle.Lifecycle
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailableRoomResponse is the public shape: no notes, no audit metadata.
type AvailableRoomResponse struct {
	ID                string  `json:"id"`
	RoomNumber        string  `json:"room_number"`
	RoomTypeID        string  `json:"room_type_id"`
	RoomTypeName      string  `json:"room_type_name"`
	RoomTypeBasePrice float64 `json:"room_type_base_price"`
	Floor             int     `json:"floor"`
}

type GetAvailableRoomsResponse struct {
	Rooms []AvailableRoomResponse `json:"rooms"`
}

func (r *GetAvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i] = AvailableRoomResponse{
			ID:                mod.ID,
			RoomNumber:        mod.RoomNumber,
			RoomTypeID:        mod.RoomTypeID,
			RoomTypeName:      mod.RoomTypeName,
			RoomTypeBasePrice: mod.RoomTypeBasePrice,
			Floor:             mod.Floor,
		}
	}
}
