package response

import (
	"time"

	"github.com/JeannRezende7/MarcaHora/internal/usecase/queries"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlotViews(date string, views []queries.SlotView) AvailabilityResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{Start: v.Start, End: v.End}
	}
	return AvailabilityResponse{Date: date, Slots: slots}
}
