package model

import "elysian/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID        = "id"
	FieldName      = "name"
	FieldBasePrice = "base_price"
	FieldLifecycle = "lifecycle"
)

type RoomType struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	BasePrice   float64 `db:"base_price"`
	Capacity    int     `db:"capacity"`
	model.Lifecycle
	model.Metadata
}
