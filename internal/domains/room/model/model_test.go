package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"elysian/internal/domains/room/model"
	gModel "elysian/shared/model"
)

func TestRoomIsBookable(t *testing.T) {
	room := func(lifecycle, status string) model.Room {
		return model.Room{
			Status: status,
			Lifecycle: gModel.Lifecycle{
				Lifecycle: lifecycle,
			},
		}
	}

	tests := []struct {
		name string
		room model.Room
		want bool
	}{
		{name: "active available", room: room(gModel.LifecycleActive, model.StatusAvailable), want: true},
		{name: "active dirty", room: room(gModel.LifecycleActive, model.StatusDirty), want: true},
		{name: "occupancy does not block booking other dates", room: room(gModel.LifecycleActive, model.StatusOccupied), want: true},
		{name: "maintenance blocks booking", room: room(gModel.LifecycleActive, model.StatusMaintenance), want: false},
		{name: "inactive room", room: room(gModel.LifecycleInactive, model.StatusAvailable), want: false},
		{name: "deleted room", room: room(gModel.LifecycleDeleted, model.StatusAvailable), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.room.IsBookable())
		})
	}
}
