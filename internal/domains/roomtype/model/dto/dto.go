package dto

import (
	"elysian/internal/domains/roomtype/model"
	"elysian/shared"
	gDto "elysian/shared/dto"
	gModel "elysian/shared/model"
	"elysian/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	Capacity    int     `json:"capacity" validate:"omitempty,gte=1"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	capacity := c.Capacity
	if capacity == 0 {
		capacity = 2
	}

	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		BasePrice:   c.BasePrice,
		Capacity:    capacity,
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

type UpdateRoomTypeRequest struct {
	Name        string  `db:"name" json:"name" validate:"omitempty,max=100"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=500"`
	BasePrice   float64 `db:"base_price" json:"base_price" validate:"omitempty,gt=0"`
	Capacity    int     `db:"capacity" json:"capacity" validate:"omitempty,gte=1"`
	Lifecycle   string  `db:"lifecycle" json:"lifecycle" validate:"omitempty,oneof=active inactive"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Capacity    int     `json:"capacity"`
	Lifecycle   string  `json:"lifecycle"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.BasePrice = mod.BasePrice
	r.Capacity = mod.Capacity
	r.Lifecycle = mod.Lifecycle.Lifecycle
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
