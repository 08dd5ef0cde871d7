package response

import (
	"time"

	"crease/internal/usecase/queries"
)

type FreeSlotResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Slab      string    `json:"slab"`
	Price     int64     `json:"price"`
}

func FromFreeSlots(slots []*queries.FreeSlot) []*FreeSlotResponse {
	out := make([]*FreeSlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, &FreeSlotResponse{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Slab:      s.Slab,
			Price:     s.Price,
		})
	}
	return out
}
