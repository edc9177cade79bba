package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/internal/integrations/bookingstore"
	"github.com/kritsadaK/TTB-BookingService/internal/integrations/catalogservice"
	"github.com/kritsadaK/TTB-BookingService/pkg/ptr"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	pkg *domain.Package
	err error
}

func (f *fakeCatalog) GetPackage(_ context.Context, _ string) (*domain.Package, error) {
	return f.pkg, f.err
}

type fakeVehicles struct {
	registry domain.VehicleRegistry
}

func (f *fakeVehicles) GetRegistryWithGracefulDegradation(_ context.Context) (domain.VehicleRegistry, error) {
	return f.registry, nil
}

type fakeStore struct {
	bookings  []*domain.Booking
	overrides []domain.SlotOverride
	createErr error
	created   *domain.Booking
}

func (f *fakeStore) GetBookings(_ context.Context, _ bookingstore.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeStore) GetSlotOverrides(_ context.Context, _ string, _ types.CivilDate) ([]domain.SlotOverride, error) {
	return f.overrides, nil
}

func (f *fakeStore) CreateBooking(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = "created-1"
	created.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

func bangkok(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)
	return loc
}

func validRequest() *Request {
	return &Request{
		PackageID:    "tour-1",
		Date:         "2025-10-15",
		Time:         "09:00",
		Adults:       4,
		ContactName:  "Somchai",
		ContactEmail: "somchai@example.com",
		ContactPhone: "+66 81 234 5678",
	}
}

func TestUseCase_Execute_AcceptsAndPersists(t *testing.T) {
	pkg := &domain.Package{
		ID:            "tour-1",
		Title:         "Island Hopper",
		Kind:          domain.KindTour,
		SubType:       domain.TourSubTypeCoTour,
		AdultPrice:    100,
		ChildPrice:    50,
		MinimumPerson: 4,
		MaximumPerson: ptr.Ptr(20),
		Times:         []types.TimeString{"09:00"},
	}
	store := &fakeStore{}

	uc := NewUseCase(&fakeCatalog{pkg: pkg}, &fakeVehicles{}, store, bangkok(t), nopLogger{})

	req := validRequest()
	req.Children = 1

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "created-1", resp.ID)
	assert.Equal(t, 450.0, resp.TotalCharge) // 4*100 + 1*50
	assert.False(t, resp.VehicleUnit)

	require.NotNil(t, store.created)
	assert.Equal(t, types.CivilDate("2025-10-15"), types.CivilDateIn(store.created.Date, bangkok(t)))
}

func TestUseCase_Execute_PrivateTransferConsumesVehicleUnit(t *testing.T) {
	// Scenario C: Van A с 3 юнитами, один уже занят
	loc := bangkok(t)
	pkg := &domain.Package{
		ID:            "tr-1",
		Title:         "Private Airport Transfer",
		Kind:          domain.KindTransfer,
		SubType:       domain.TransferSubTypePrivate,
		VehicleName:   "Van A",
		AdultPrice:    500,
		MinimumPerson: 1,
		Times:         []types.TimeString{"08:00"},
	}
	store := &fakeStore{
		bookings: []*domain.Booking{
			{ID: "b1", PackageID: "tr-1", Date: time.Date(2025, 10, 15, 8, 0, 0, 0, loc), Time: "08:00", Adults: 2, VehicleUnit: true},
		},
	}
	registry := domain.NewVehicleRegistry([]domain.Vehicle{{Name: "Van A", Units: 3}})

	uc := NewUseCase(&fakeCatalog{pkg: pkg}, &fakeVehicles{registry: registry}, store, loc, nopLogger{})

	req := validRequest()
	req.PackageID = "tr-1"
	req.Time = "08:00"
	req.Adults = 2
	req.PickupLocation = "Karon Beach Resort"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.VehicleUnit)
	assert.Equal(t, 1000.0, resp.TotalCharge)
}

func TestUseCase_Execute_FirstBookingMinimum(t *testing.T) {
	// Scenario A / B попарно через occupancy
	pkg := &domain.Package{
		ID:            "tour-1",
		Kind:          domain.KindTour,
		SubType:       domain.TourSubTypeCoTour,
		AdultPrice:    100,
		MinimumPerson: 4,
		Times:         []types.TimeString{"09:00"},
	}
	loc := bangkok(t)

	t.Run("empty slot rejects below minimum", func(t *testing.T) {
		uc := NewUseCase(&fakeCatalog{pkg: pkg}, &fakeVehicles{}, &fakeStore{}, loc, nopLogger{})
		req := validRequest()
		req.Adults = 2
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMinimumNotMet)
	})

	t.Run("after first booking a single adult is enough", func(t *testing.T) {
		store := &fakeStore{
			bookings: []*domain.Booking{
				{ID: "b1", PackageID: "tour-1", Date: time.Date(2025, 10, 15, 9, 0, 0, 0, loc), Time: "09:00", Adults: 4},
			},
		}
		uc := NewUseCase(&fakeCatalog{pkg: pkg}, &fakeVehicles{}, store, loc, nopLogger{})
		req := validRequest()
		req.Adults = 1
		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestUseCase_Execute_SlotToggledOff(t *testing.T) {
	pkg := &domain.Package{
		ID:            "tour-1",
		Kind:          domain.KindTour,
		AdultPrice:    100,
		MinimumPerson: 1,
		Times:         []types.TimeString{"09:00"},
	}
	unavailable := false
	store := &fakeStore{
		overrides: []domain.SlotOverride{{Time: "09:00", IsAvailable: &unavailable}},
	}

	uc := NewUseCase(&fakeCatalog{pkg: pkg}, &fakeVehicles{}, store, bangkok(t), nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestUseCase_Execute_StoreRejection(t *testing.T) {
	pkg := &domain.Package{
		ID:            "tour-1",
		Kind:          domain.KindTour,
		AdultPrice:    100,
		MinimumPerson: 1,
		Times:         []types.TimeString{"09:00"},
	}
	store := &fakeStore{createErr: bookingstore.ErrRejectedByStore}

	uc := NewUseCase(&fakeCatalog{pkg: pkg}, &fakeVehicles{}, store, bangkok(t), nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreRejected)
}

func TestUseCase_Execute_PackageNotFound(t *testing.T) {
	catalog := &fakeCatalog{err: catalogservice.ErrPackageNotFound}

	uc := NewUseCase(catalog, &fakeVehicles{}, &fakeStore{}, bangkok(t), nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestUseCase_Execute_UnknownSlotTime(t *testing.T) {
	pkg := &domain.Package{
		ID:            "tour-1",
		Kind:          domain.KindTour,
		AdultPrice:    100,
		MinimumPerson: 1,
		Times:         []types.TimeString{"09:00"},
	}

	uc := NewUseCase(&fakeCatalog{pkg: pkg}, &fakeVehicles{}, &fakeStore{}, bangkok(t), nopLogger{})
	req := validRequest()
	req.Time = "10:30"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
