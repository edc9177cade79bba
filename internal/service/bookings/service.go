package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	storeClient "github.com/kritsadaK/TTB-BookingService/internal/integrations/bookingstore"
	catalogClient "github.com/kritsadaK/TTB-BookingService/internal/integrations/catalogservice"
	"github.com/kritsadaK/TTB-BookingService/internal/service/bookings/models"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// Service сервис административных операций над бронированиями и слотами.
// Состояние живёт в хранилище бронирований, сервис только валидирует
// и транслирует запросы
type Service struct {
	bookingStore BookingStoreClient
	catalog      CatalogClient
	businessTZ   *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingStore BookingStoreClient,
	catalog CatalogClient,
	businessTZ *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingStore: bookingStore,
		catalog:      catalog,
		businessTZ:   businessTZ,
		logger:       logger,
	}
}

// GetPackageBookings получает бронирования пакета с опциональной
// фильтрацией по дате и слоту
func (s *Service) GetPackageBookings(ctx context.Context, req *models.GetPackageBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPackageBookings: fetching bookings for package=%s, date=%s, time=%s",
		req.PackageID, req.Date, req.Time)

	if req.PackageID == "" {
		return nil, fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}
	if !req.Time.IsZero() {
		if err := req.Time.Validate(); err != nil {
			s.logger.Warn("GetPackageBookings: invalid time filter for package=%s: %v", req.PackageID, err)
			return nil, fmt.Errorf("%w: invalid time filter: %v", ErrInvalidInput, err)
		}
	}

	bookings, err := s.bookingStore.GetBookings(ctx, storeClient.BookingsFilter{
		PackageID: req.PackageID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		s.logger.Error("GetPackageBookings: store error for package=%s: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: GetPackageBookings - store error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPackageBookings: successfully fetched %d bookings for package=%s",
		len(bookings), req.PackageID)
	return models.FromDomainBookingList(bookings, s.businessTZ), nil
}

// DeleteBooking удаляет бронирование из хранилища
func (s *Service) DeleteBooking(ctx context.Context, bookingID string) error {
	s.logger.Info("DeleteBooking: deleting booking id=%s", bookingID)

	if bookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if err := s.bookingStore.DeleteBooking(ctx, bookingID); err != nil {
		if errors.Is(err, storeClient.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: store error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: DeleteBooking - store error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBooking: successfully deleted booking id=%s", bookingID)
	return nil
}

// ToggleSlotAvailability включает или выключает слот для новых бронирований.
// Существующие бронирования выключенного слота остаются в силе
func (s *Service) ToggleSlotAvailability(ctx context.Context, req *models.ToggleSlotRequest) error {
	s.logger.Info("ToggleSlotAvailability: package=%s, date=%s, time=%s, available=%t",
		req.PackageID, req.Date, req.Time, req.IsAvailable)

	pkg, err := s.resolvePackage(ctx, req.PackageID, req.Date, req.Time)
	if err != nil {
		return err
	}

	if err := s.bookingStore.ToggleAvailability(ctx, storeClient.ToggleAvailabilityRequest{
		PackageID:   req.PackageID,
		PackageType: string(pkg.Kind),
		Date:        req.Date.String(),
		Time:        req.Time.String(),
		IsAvailable: req.IsAvailable,
	}); err != nil {
		s.logger.Error("ToggleSlotAvailability: store error for package=%s: %v", req.PackageID, err)
		return fmt.Errorf("%w: ToggleSlotAvailability - store error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleSlotAvailability: slot %s %s of package=%s is now available=%t",
		req.Date, req.Time, req.PackageID, req.IsAvailable)
	return nil
}

// SetSlotMinimum устанавливает минимум человек для конкретного слота,
// перекрывая minimumPerson пакета
func (s *Service) SetSlotMinimum(ctx context.Context, req *models.SetMinimumRequest) error {
	s.logger.Info("SetSlotMinimum: package=%s, date=%s, time=%s, minimum=%d",
		req.PackageID, req.Date, req.Time, req.MinimumPerson)

	if req.MinimumPerson < 1 {
		s.logger.Warn("SetSlotMinimum: invalid minimum=%d for package=%s", req.MinimumPerson, req.PackageID)
		return fmt.Errorf("%w: minimumPerson must be positive", ErrInvalidInput)
	}

	pkg, err := s.resolvePackage(ctx, req.PackageID, req.Date, req.Time)
	if err != nil {
		return err
	}

	if err := s.bookingStore.SetMinimumPerson(ctx, storeClient.MinimumPersonRequest{
		PackageID:     req.PackageID,
		PackageType:   string(pkg.Kind),
		Date:          req.Date.String(),
		Time:          req.Time.String(),
		MinimumPerson: req.MinimumPerson,
	}); err != nil {
		s.logger.Error("SetSlotMinimum: store error for package=%s: %v", req.PackageID, err)
		return fmt.Errorf("%w: SetSlotMinimum - store error: %v", ErrInternal, err)
	}

	s.logger.Info("SetSlotMinimum: slot %s %s of package=%s now requires minimum=%d",
		req.Date, req.Time, req.PackageID, req.MinimumPerson)
	return nil
}

// resolvePackage валидирует адрес слота и подтверждает существование пакета
func (s *Service) resolvePackage(ctx context.Context, packageID string, date types.CivilDate, slotTime types.TimeString) (*domain.Package, error) {
	if packageID == "" {
		return nil, fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if slotTime.IsZero() {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := slotTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	pkg, err := s.catalog.GetPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrPackageNotFound) {
			s.logger.Warn("resolvePackage: package id=%s not found", packageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("resolvePackage: failed to get package id=%s: %v", packageID, err)
		return nil, fmt.Errorf("%w: resolvePackage - failed to get package: %v", ErrInternal, err)
	}

	return pkg, nil
}
