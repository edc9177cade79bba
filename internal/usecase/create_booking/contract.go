package create_booking

import (
	"context"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/internal/integrations/bookingstore"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// CatalogClient интерфейс клиента каталога пакетов
type CatalogClient interface {
	GetPackage(ctx context.Context, packageID string) (*domain.Package, error)
}

// VehicleClient интерфейс клиента реестра транспорта
type VehicleClient interface {
	GetRegistryWithGracefulDegradation(ctx context.Context) (domain.VehicleRegistry, error)
}

// BookingStoreClient интерфейс клиента хранилища бронирований
type BookingStoreClient interface {
	GetBookings(ctx context.Context, filter bookingstore.BookingsFilter) ([]*domain.Booking, error)
	GetSlotOverrides(ctx context.Context, packageID string, date types.CivilDate) ([]domain.SlotOverride, error)
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
