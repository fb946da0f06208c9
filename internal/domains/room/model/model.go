package model

import "elysian/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomTypeID = "room_type_id"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldNotes      = "notes"
	FieldLifecycle  = "lifecycle"
)

// Room status is owned by the booking lifecycle and housekeeping actions.
// Inventory edits never write it.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusDirty       = "dirty"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	RoomTypeID string `db:"room_type_id"`
	Floor      int    `db:"floor"`
	Status     string `db:"status"`
	Notes      string `db:"notes"`

	RoomTypeName      string  `db:"room_type_name" table:"room_types" column:"name"`
	RoomTypeBasePrice float64 `db:"room_type_base_price" table:"room_types" column:"base_price"`

	model.Lifecycle
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.room_type_id"
}

// HousekeepingCleanable reports whether a clean action may return the room
// to available.
func (r Room) HousekeepingCleanable() bool {
	return r.Status == StatusDirty || r.Status == StatusMaintenance
}

// IsBookable reports whether the room can accept a booking at all. Current
// occupancy is not a factor here; date overlaps are checked against the
// bookings themselves.
func (r Room) IsBookable() bool {
	return r.Lifecycle.Lifecycle == model.LifecycleActive && r.Status != StatusMaintenance
}
