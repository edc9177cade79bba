package bookingstore

import (
	"time"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	PackageID string           // Обязательный параметр
	Date      types.CivilDate  // Дата (опционально, пустая = без ограничения)
	Time      types.TimeString // Время слота (опционально)
}

// wireBooking модель бронирования на проводе
type wireBooking struct {
	ID             string    `json:"id"`
	PackageID      string    `json:"packageId"`
	PackageType    string    `json:"packageType"`
	Date           time.Time `json:"date"` // RFC3339 timestamp из хранилища
	Time           string    `json:"time"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PickupLocation string    `json:"pickupLocation,omitempty"`
	TotalCharge    float64   `json:"totalCharge"`
	VehicleBooking bool      `json:"isVehicleBooking"`
	CreatedAt      time.Time `json:"createdAt"`
}

// wireSlotOverride запись переключателя слота на проводе
type wireSlotOverride struct {
	Time          string `json:"time"`
	IsAvailable   *bool  `json:"isAvailable,omitempty"`
	MinimumPerson *int   `json:"minimumPerson,omitempty"`
}

// ToggleAvailabilityRequest запрос на переключение доступности слота
type ToggleAvailabilityRequest struct {
	PackageID   string `json:"packageId"`
	PackageType string `json:"packageType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
}

// MinimumPersonRequest запрос на установку слотового минимума
type MinimumPersonRequest struct {
	PackageType   string `json:"packageType"`
	PackageID     string `json:"packageId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	MinimumPerson int    `json:"minimumPerson"`
}

// ErrorResponse модель ошибки от хранилища
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomain конвертирует wire модель в domain.Booking
func (b *wireBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:             b.ID,
		PackageID:      b.PackageID,
		PackageKind:    domain.PackageKind(b.PackageType),
		Date:           b.Date,
		Time:           types.TimeString(b.Time),
		Adults:         b.Adults,
		Children:       b.Children,
		ContactName:    b.Name,
		ContactEmail:   b.Email,
		ContactPhone:   b.Phone,
		PickupLocation: b.PickupLocation,
		TotalCharge:    b.TotalCharge,
		VehicleUnit:    b.VehicleBooking,
		CreatedAt:      b.CreatedAt,
	}
}

// fromDomain конвертирует domain.Booking в wire модель для POST
func fromDomain(b *domain.Booking) *wireBooking {
	return &wireBooking{
		ID:             b.ID,
		PackageID:      b.PackageID,
		PackageType:    string(b.PackageKind),
		Date:           b.Date,
		Time:           b.Time.String(),
		Adults:         b.Adults,
		Children:       b.Children,
		Name:           b.ContactName,
		Email:          b.ContactEmail,
		Phone:          b.ContactPhone,
		PickupLocation: b.PickupLocation,
		TotalCharge:    b.TotalCharge,
		VehicleBooking: b.VehicleUnit,
	}
}
