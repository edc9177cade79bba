package domain

import "github.com/kritsadaK/TTB-BookingService/pkg/types"

// Slot is a derived (package, date, time) booking opportunity with occupancy.
// Slots are computed, never persisted: only the availability toggle and the
// minimum-person override live in the external bookings store
type Slot struct {
	PackageID     string
	Date          types.CivilDate
	Time          types.TimeString
	Capacity      int  // effective maximum from the capacity resolver
	BookedCount   int  // occupancy units already taken
	IsAvailable   bool // explicit admin toggle, independent of capacity
	MinimumPerson int  // slot-level override, falls back to package minimum
}

// AvailableUnits returns remaining capacity, clamped at zero
func (s *Slot) AvailableUnits() int {
	remaining := s.Capacity - s.BookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true if no capacity remains
func (s *Slot) IsFull() bool {
	return s.AvailableUnits() == 0
}

// IsEmpty returns true if the slot has no bookings yet
// (первое бронирование в пустой слот обязано добрать MinimumPerson)
func (s *Slot) IsEmpty() bool {
	return s.BookedCount == 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *Slot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.BookedCount) / float64(s.Capacity) * 100
}

// SlotOverride is the per-slot record the bookings store keeps alongside
// bookings: the explicit availability toggle and the minimum-person override
type SlotOverride struct {
	Time          types.TimeString
	IsAvailable   *bool
	MinimumPerson *int
}
