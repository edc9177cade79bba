package get_bookings

import (
	"context"

	"github.com/kritsadaK/TTB-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetPackageBookings(ctx context.Context, req *models.GetPackageBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
