package create_booking

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

// UseCase use case для создания бронирования.
//
// Проверка вместимости здесь — это чтение-потом-решение над внешним
// хранилищем: два одновременных запроса могут оба увидеть последнее
// свободное место. Финальную сериализацию обязано давать хранилище
// (условная запись), его отказ транслируется как ErrStoreRejected
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

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: package=%s, date=%s, time=%s, adults=%d, children=%d",
		req.PackageID, req.Date, req.Time, req.Adults, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пакет из каталога
	pkg, err := uc.catalog.GetPackage(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrPackageNotFound) {
			uc.logger.Warn("CreateBooking: package id=%s not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("CreateBooking: failed to get package id=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 3. Получаем реестр транспорта (с деградацией к дефолтам пакета)
	registry, err := uc.vehicles.GetRegistryWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, vehicleClient.ErrServiceDegraded) {
			uc.logger.Error("CreateBooking: failed to get vehicle registry: %v", err)
			return nil, fmt.Errorf("%w: failed to get vehicle registry: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateBooking: vehicle registry degraded, capacity falls back to package defaults")
	}

	// 4. Получаем текущие бронирования и переключатели слотов на дату
	bookings, err := uc.bookingStore.GetBookings(ctx, bookingstore.BookingsFilter{
		PackageID: req.PackageID,
		Date:      req.Date,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	overrides, err := uc.bookingStore.GetSlotOverrides(ctx, req.PackageID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get slot overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot overrides: %v", ErrInternal, err)
	}

	// 5. Собираем состояние слотов и находим запрошенный
	slots := domain.BuildDaySlots(pkg, registry, bookings, overrides, req.Date, uc.businessTZ)
	slot, found := domain.FindSlot(slots, req.Time)

	// 6. Упорядоченные бизнес-проверки, стоп на первом нарушении
	if err := validateAgainstSlot(req, pkg, slot, found); err != nil {
		uc.logger.Warn("CreateBooking: rejected: %v", err)
		return nil, err
	}

	// 7. Итоговая стоимость
	total := computeTotal(pkg, req.Adults, req.Children)

	// 8. Дата бронирования — полночь гражданской даты в бизнес-таймзоне
	bookingDate, err := req.Date.Time(uc.businessTZ)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve booking date: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		PackageID:      pkg.ID,
		PackageKind:    pkg.Kind,
		Date:           bookingDate,
		Time:           req.Time,
		Adults:         req.Adults,
		Children:       req.Children,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		PickupLocation: req.PickupLocation,
		TotalCharge:    total,
		VehicleUnit:    pkg.IsPrivateTransfer(),
	}

	// 9. Персистентность — ответственность хранилища
	created, err := uc.bookingStore.CreateBooking(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingstore.ErrRejectedByStore) {
			uc.logger.Warn("CreateBooking: store rejected booking for package=%s, time=%s: %v",
				req.PackageID, req.Time, err)
			return nil, fmt.Errorf("%w: %v", ErrStoreRejected, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", created.ID, created.TotalCharge)

	return &Response{
		ID:             created.ID,
		PackageID:      created.PackageID,
		PackageTitle:   pkg.Title,
		Date:           req.Date,
		Time:           created.Time,
		Adults:         created.Adults,
		Children:       created.Children,
		PickupLocation: created.PickupLocation,
		ContactName:    created.ContactName,
		ContactEmail:   created.ContactEmail,
		ContactPhone:   created.ContactPhone,
		TotalCharge:    created.TotalCharge,
		VehicleUnit:    created.VehicleUnit,
		CreatedAt:      created.CreatedAt,
	}, nil
}
