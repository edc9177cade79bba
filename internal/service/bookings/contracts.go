package bookings

import (
	"context"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/internal/integrations/bookingstore"
)

// BookingStoreClient интерфейс клиента хранилища бронирований
type BookingStoreClient interface {
	GetBookings(ctx context.Context, filter bookingstore.BookingsFilter) ([]*domain.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	ToggleAvailability(ctx context.Context, req bookingstore.ToggleAvailabilityRequest) error
	SetMinimumPerson(ctx context.Context, req bookingstore.MinimumPersonRequest) error
}

// CatalogClient интерфейс клиента каталога пакетов
type CatalogClient interface {
	GetPackage(ctx context.Context, packageID string) (*domain.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
