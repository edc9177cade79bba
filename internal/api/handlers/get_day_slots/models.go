package get_day_slots

import (
	getDaySlots "github.com/kritsadaK/TTB-BookingService/internal/usecase/get_day_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time           string `json:"time"`
	Capacity       int    `json:"capacity"`
	BookedCount    int    `json:"bookedCount"`
	AvailableUnits int    `json:"availableUnits"`
	IsAvailable    bool   `json:"isAvailable"`
	MinimumPerson  int    `json:"minimumPerson"`
}

// DaySlotsResponse HTTP модель ответа со слотами пакета на дату
type DaySlotsResponse struct {
	PackageID    string         `json:"packageId"`
	PackageTitle string         `json:"packageTitle"`
	Date         string         `json:"date"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:           s.Time.String(),
			Capacity:       s.Capacity,
			BookedCount:    s.BookedCount,
			AvailableUnits: s.AvailableUnits,
			IsAvailable:    s.IsAvailable,
			MinimumPerson:  s.MinimumPerson,
		}
	}
	return &DaySlotsResponse{
		PackageID:    resp.PackageID,
		PackageTitle: resp.PackageTitle,
		Date:         resp.Date.String(),
		Slots:        slots,
	}
}
