package domain

import (
	"time"

	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// Booking represents a booking record from the external bookings store.
// The engine never mutates a booking after creation
type Booking struct {
	ID          string
	PackageID   string
	PackageKind PackageKind
	Date        time.Time // момент из хранилища, нормализуется к CivilDate при агрегации
	Time        types.TimeString
	Adults      int
	Children    int

	ContactName    string
	ContactEmail   string
	ContactPhone   string
	PickupLocation string

	TotalCharge float64

	// VehicleUnit помечает бронирование, занимающее один юнит транспорта
	// (приватный трансфер), а не места по головам
	VehicleUnit bool

	CreatedAt time.Time
}

// PartySize returns the total headcount of the booking
func (b *Booking) PartySize() int {
	return b.Adults + b.Children
}

// OccupancyUnits returns how much slot capacity the booking consumes:
// one unit for vehicle-based bookings, headcount otherwise
func (b *Booking) OccupancyUnits() int {
	if b.VehicleUnit {
		return 1
	}
	return b.PartySize()
}

// CivilDateIn returns the booking's calendar date in the given business timezone
func (b *Booking) CivilDateIn(loc *time.Location) types.CivilDate {
	return types.CivilDateIn(b.Date, loc)
}
