package create_booking

import (
	"time"

	createBooking "github.com/kritsadaK/TTB-BookingService/internal/usecase/create_booking"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PackageID      string `json:"packageId"`
	Date           string `json:"date"` // "2025-10-15"
	Time           string `json:"time"` // "09:00"
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	PickupLocation string `json:"pickupLocation,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	PackageID      string  `json:"packageId"`
	PackageTitle   string  `json:"packageTitle"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	PickupLocation string  `json:"pickupLocation,omitempty"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	TotalCharge    float64 `json:"totalCharge"`
	VehicleBooking bool    `json:"isVehicleBooking"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := types.NewCivilDateFromString(r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PackageID:      r.PackageID,
		Date:           date,
		Time:           slotTime,
		Adults:         r.Adults,
		Children:       r.Children,
		PickupLocation: r.PickupLocation,
		ContactName:    r.Name,
		ContactEmail:   r.Email,
		ContactPhone:   r.Phone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		PackageID:      resp.PackageID,
		PackageTitle:   resp.PackageTitle,
		Date:           resp.Date.String(),
		Time:           resp.Time.String(),
		Adults:         resp.Adults,
		Children:       resp.Children,
		PickupLocation: resp.PickupLocation,
		Name:           resp.ContactName,
		Email:          resp.ContactEmail,
		Phone:          resp.ContactPhone,
		TotalCharge:    resp.TotalCharge,
		VehicleBooking: resp.VehicleUnit,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
