package model

// Report rows are produced by aggregate queries only; there is no report
// table.

type RoomTypeRevenue struct {
	RoomTypeID   string  `db:"room_type_id"`
	RoomTypeName string  `db:"room_type_name"`
	BookingCount int     `db:"booking_count"`
	Revenue      float64 `db:"revenue"`
}

type SourceBreakdown struct {
	Source       string  `db:"source"`
	BookingCount int     `db:"booking_count"`
	Revenue      float64 `db:"revenue"`
}

type MonthlyTrend struct {
	Month        string  `db:"month"`
	BookingCount int     `db:"booking_count"`
	Revenue      float64 `db:"revenue"`
}

type RoomStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}
