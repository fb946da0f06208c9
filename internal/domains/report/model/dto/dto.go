package dto

import "elysian/internal/domains/report/model"

type RoomTypeRevenueResponse struct {
	RoomTypeID   string  `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name"`
	BookingCount int     `json:"booking_count"`
	Revenue      float64 `json:"revenue"`
}

type SourceBreakdownResponse struct {
	Source       string  `json:"source"`
	BookingCount int     `json:"booking_count"`
	Revenue      float64 `json:"revenue"`
}

type MonthlyTrendResponse struct {
	Month        string  `json:"month"`
	BookingCount int     `json:"booking_count"`
	Revenue      float64 `json:"revenue"`
}

type RoomStatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type RevenueReportResponse struct {
	ByRoomType []RoomTypeRevenueResponse `json:"by_room_type"`
	BySource   []SourceBreakdownResponse `json:"by_source"`
	Monthly    []MonthlyTrendResponse    `json:"monthly"`
}

func (r *RevenueReportResponse) FromModels(byType []model.RoomTypeRevenue, bySource []model.SourceBreakdown, monthly []model.MonthlyTrend) {
	r.ByRoomType = make([]RoomTypeRevenueResponse, len(byType))
	for i, m := range byType {
		r.ByRoomType[i] = RoomTypeRevenueResponse(m)
	}

	r.BySource = make([]SourceBreakdownResponse, len(bySource))
	for i, m := range bySource {
		r.BySource[i] = SourceBreakdownResponse(m)
	}

	r.Monthly = make([]MonthlyTrendResponse, len(monthly))
	for i, m := range monthly {
		r.Monthly[i] = MonthlyTrendResponse(m)
	}
}

type RoomStatusReportResponse struct {
	Counts []RoomStatusCountResponse `json:"counts"`
	Total  int                       `json:"total"`
}

func (r *RoomStatusReportResponse) FromModels(models []model.RoomStatusCount) {
	r.Counts = make([]RoomStatusCountResponse, len(models))
	for i, m := range models {
		r.Counts[i] = RoomStatusCountResponse(m)
		r.Total += m.Count
	}
}
