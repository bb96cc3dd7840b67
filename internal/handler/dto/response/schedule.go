package response

import (
	"cinema-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type SeatMapResponse struct {
	ScheduleID uuid.UUID `json:"scheduleId"`
	Hall       string    `json:"hall"`
	Capacity   int       `json:"capacity"`
	TakenSeats []int     `json:"takenSeats"`
}

type SeatAvailabilityResponse struct {
	ScheduleID uuid.UUID `json:"scheduleId"`
	SeatNumber int       `json:"seatNumber"`
	Available  bool      `json:"available"`
}

func FromSeatMapView(rm *queries.SeatMapView) *SeatMapResponse {
	taken := rm.TakenSeats
	if taken == nil {
		taken = []int{}
	}
	return &SeatMapResponse{
		ScheduleID: rm.ScheduleID,
		Hall:       rm.Hall,
		Capacity:   rm.Capacity,
		TakenSeats: taken,
	}
}
