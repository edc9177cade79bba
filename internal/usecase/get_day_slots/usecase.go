package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/internal/integrations/bookingstore"
	catalogClient "github.com/kritsadaK/TTB-BookingService/internal/integrations/catalogservice"
	vehicleClient "github.com/kritsadaK/TTB-BookingService/internal/integrations/vehicleservice"
)

// UseCase use case для получения слотов пакета на дату
type UseCase struct {
	catalog      CatalogClient
	vehicles     VehicleClient
	bookingStore BookingStoreClient
	businessTZ   *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogClient,
	vehicles VehicleClient,
	bookingStore BookingStoreClient,
	businessTZ *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		vehicles:     vehicles,
		bookingStore: bookingStore,
		businessTZ:   businessTZ,
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: package=%s, date=%s", req.PackageID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пакет из каталога
	pkg, err := uc.catalog.GetPackage(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrPackageNotFound) {
			uc.logger.Warn("GetDaySlots: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 3. Получаем реестр транспорта
	// Недоступный реестр не блокирует выдачу: вместимость деградирует к
	// дефолтам пакета (осознанная лояльность, см. DESIGN.md)
	registry, err := uc.vehicles.GetRegistryWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, vehicleClient.ErrServiceDegraded) {
			uc.logger.Error("GetDaySlots: failed to get vehicle registry: %v", err)
			return nil, fmt.Errorf("%w: failed to get vehicle registry: %v", ErrInternal, err)
		}
		uc.logger.Warn("GetDaySlots: vehicle registry degraded, capacity falls back to package defaults")
	}

	// 4. Получаем бронирования пакета на дату
	bookings, err := uc.bookingStore.GetBookings(ctx, bookingstore.BookingsFilter{
		PackageID: req.PackageID,
		Date:      req.Date,
	})
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Получаем переключатели слотов
	overrides, err := uc.bookingStore.GetSlotOverrides(ctx, req.PackageID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get slot overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot overrides: %v", ErrInternal, err)
	}

	// 6. Собираем слоты дня
	slots := domain.BuildDaySlots(pkg, registry, bookings, overrides, req.Date, uc.businessTZ)

	uc.logger.Info("GetDaySlots: built %d slots for package=%s, date=%s",
		len(slots), req.PackageID, req.Date)

	return &Response{
		PackageID:    pkg.ID,
		PackageTitle: pkg.Title,
		Date:         req.Date,
		Slots:        fromDomainSlots(slots),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
