package models

import (
	"time"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// Request модели

// GetPackageBookingsRequest запрос на выборку бронирований пакета
type GetPackageBookingsRequest struct {
	PackageID string           `json:"packageId"`
	Date      types.CivilDate  `json:"date,omitempty"` // Фильтр по дате (опционально)
	Time      types.TimeString `json:"time,omitempty"` // Фильтр по слоту (опционально)
}

// ToggleSlotRequest запрос на переключение доступности слота
type ToggleSlotRequest struct {
	PackageID   string           `json:"packageId"`
	Date        types.CivilDate  `json:"date"`
	Time        types.TimeString `json:"time"`
	IsAvailable bool             `json:"isAvailable"`
}

// SetMinimumRequest запрос на установку слотового минимума
type SetMinimumRequest struct {
	PackageID     string           `json:"packageId"`
	Date          types.CivilDate  `json:"date"`
	Time          types.TimeString `json:"time"`
	MinimumPerson int              `json:"minimumPerson"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string    `json:"id"`
	PackageID      string    `json:"packageId"`
	PackageType    string    `json:"packageType"`
	Date           string    `json:"date"` // "2025-10-15"
	Time           string    `json:"time"` // "09:00"
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

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response модель.
// Дата отдаётся как гражданская дата в бизнес-таймзоне
func FromDomainBooking(b *domain.Booking, loc *time.Location) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		PackageID:      b.PackageID,
		PackageType:    string(b.PackageKind),
		Date:           b.CivilDateIn(loc).String(),
		Time:           b.Time.String(),
		Adults:         b.Adults,
		Children:       b.Children,
		Name:           b.ContactName,
		Email:          b.ContactEmail,
		Phone:          b.ContactPhone,
		PickupLocation: b.PickupLocation,
		TotalCharge:    b.TotalCharge,
		VehicleBooking: b.VehicleUnit,
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b, loc))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
