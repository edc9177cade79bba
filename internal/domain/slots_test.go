package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsadaK/TTB-BookingService/pkg/ptr"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func bangkokDate(loc *time.Location, day int, hour int) time.Time {
	return time.Date(2025, 10, day, hour, 0, 0, 0, loc)
}

func TestBuildDaySlots_OccupancySumRule(t *testing.T) {
	loc := mustLocation(t, "Asia/Bangkok")
	date := types.CivilDate("2025-10-15")

	pkg := &Package{
		ID:            "tour-1",
		Kind:          KindTour,
		SubType:       TourSubTypeCoTour,
		MinimumPerson: 2,
		MaximumPerson: ptr.Ptr(20),
		Times:         []types.TimeString{"09:00", "13:00"},
	}

	bookings := []*Booking{
		{ID: "b1", PackageID: "tour-1", Date: bangkokDate(loc, 15, 9), Time: "09:00", Adults: 2, Children: 1},
		{ID: "b2", PackageID: "tour-1", Date: bangkokDate(loc, 15, 9), Time: "09:00", Adults: 3},
		{ID: "b3", PackageID: "tour-1", Date: bangkokDate(loc, 15, 13), Time: "13:00", Adults: 1, VehicleUnit: true},
		// другой пакет — не учитывается
		{ID: "b4", PackageID: "tour-2", Date: bangkokDate(loc, 15, 9), Time: "09:00", Adults: 5},
		// другая дата — не учитывается
		{ID: "b5", PackageID: "tour-1", Date: bangkokDate(loc, 16, 9), Time: "09:00", Adults: 5},
	}

	slots := BuildDaySlots(pkg, nil, bookings, nil, date, loc)
	require.Len(t, slots, 2)

	// 09:00: (2+1) + 3 = 6 мест; 13:00: vehicle-based бронирование = 1 юнит
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, 6, slots[0].BookedCount)
	assert.Equal(t, types.TimeString("13:00"), slots[1].Time)
	assert.Equal(t, 1, slots[1].BookedCount)

	for _, s := range slots {
		assert.Equal(t, 20, s.Capacity)
		assert.Equal(t, 2, s.MinimumPerson)
		assert.True(t, s.IsAvailable)
		assert.GreaterOrEqual(t, s.AvailableUnits(), 0)
	}
}

func TestBuildDaySlots_TimezoneNormalization(t *testing.T) {
	loc := mustLocation(t, "Asia/Bangkok")
	date := types.CivilDate("2025-10-15")

	pkg := &Package{
		ID:    "tour-1",
		Kind:  KindTour,
		Times: []types.TimeString{"09:00"},
	}

	// 23:30 UTC 14-го — это уже 15-е в Бангкоке, бронирование должно попасть в выдачу
	utcEvening := time.Date(2025, 10, 14, 23, 30, 0, 0, time.UTC)
	bookings := []*Booking{
		{ID: "b1", PackageID: "tour-1", Date: utcEvening, Time: "09:00", Adults: 4},
	}

	slots := BuildDaySlots(pkg, nil, bookings, nil, date, loc)
	require.Len(t, slots, 1)
	assert.Equal(t, 4, slots[0].BookedCount)
}

func TestBuildDaySlots_SynthesizesEmptyScheduledSlots(t *testing.T) {
	loc := mustLocation(t, "Asia/Bangkok")
	date := types.CivilDate("2025-10-15")

	pkg := &Package{
		ID:            "tour-1",
		Kind:          KindTour,
		MinimumPerson: 4,
		Times:         []types.TimeString{"13:00", "09:00", "17:00"},
	}

	unavailable := false
	overrides := []SlotOverride{
		{Time: "13:00", IsAvailable: &unavailable},
		{Time: "17:00", MinimumPerson: ptr.Ptr(6)},
	}

	slots := BuildDaySlots(pkg, nil, nil, overrides, date, loc)
	require.Len(t, slots, 3)

	// отсортировано по времени, несмотря на порядок в расписании
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("13:00"), slots[1].Time)
	assert.Equal(t, types.TimeString("17:00"), slots[2].Time)

	assert.True(t, slots[0].IsAvailable)
	assert.False(t, slots[1].IsAvailable) // внешний переключатель сильнее свободной вместимости
	assert.Equal(t, 4, slots[0].MinimumPerson)
	assert.Equal(t, 6, slots[2].MinimumPerson) // слотовый минимум перекрывает пакетный

	for _, s := range slots {
		assert.Equal(t, 0, s.BookedCount)
		assert.True(t, s.IsEmpty())
	}
}

func TestBuildDaySlots_PrivateTransferVehicleCapacity(t *testing.T) {
	loc := mustLocation(t, "Asia/Bangkok")
	date := types.CivilDate("2025-10-15")

	pkg := &Package{
		ID:          "tr-1",
		Kind:        KindTransfer,
		SubType:     TransferSubTypePrivate,
		VehicleName: "Van A",
		Times:       []types.TimeString{"08:00"},
	}
	registry := NewVehicleRegistry([]Vehicle{{Name: "Van A", Units: 3}})

	bookings := []*Booking{
		{ID: "b1", PackageID: "tr-1", Date: bangkokDate(loc, 15, 8), Time: "08:00", Adults: 4, VehicleUnit: true},
	}

	slots := BuildDaySlots(pkg, registry, bookings, nil, date, loc)
	require.Len(t, slots, 1)

	// одна машина занята из трёх, независимо от числа пассажиров
	assert.Equal(t, 3, slots[0].Capacity)
	assert.Equal(t, 1, slots[0].BookedCount)
	assert.Equal(t, 2, slots[0].AvailableUnits())
}

func TestBuildDaySlots_IncludesBookedTimesOutsideSchedule(t *testing.T) {
	loc := mustLocation(t, "Asia/Bangkok")
	date := types.CivilDate("2025-10-15")

	pkg := &Package{
		ID:    "tour-1",
		Kind:  KindTour,
		Times: []types.TimeString{"09:00"},
	}

	// историческое бронирование на время, убранное из расписания
	bookings := []*Booking{
		{ID: "b1", PackageID: "tour-1", Date: bangkokDate(loc, 15, 11), Time: "11:00", Adults: 2},
	}

	slots := BuildDaySlots(pkg, nil, bookings, nil, date, loc)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("11:00"), slots[1].Time)
	assert.Equal(t, 2, slots[1].BookedCount)
}

func TestBuildDaySlots_EmptyScheduleNoBookings(t *testing.T) {
	loc := mustLocation(t, "Asia/Bangkok")
	slots := BuildDaySlots(&Package{ID: "tour-1", Kind: KindTour}, nil, nil, nil, "2025-10-15", loc)
	assert.Empty(t, slots)

	assert.Empty(t, BuildDaySlots(nil, nil, nil, nil, "2025-10-15", loc))
}

func TestBuildDaySlots_Idempotent(t *testing.T) {
	loc := mustLocation(t, "Asia/Bangkok")
	date := types.CivilDate("2025-10-15")

	pkg := &Package{
		ID:            "tour-1",
		Kind:          KindTour,
		MinimumPerson: 2,
		Times:         []types.TimeString{"09:00", "13:00"},
	}
	bookings := []*Booking{
		{ID: "b1", PackageID: "tour-1", Date: bangkokDate(loc, 15, 9), Time: "09:00", Adults: 3},
	}

	first := BuildDaySlots(pkg, nil, bookings, nil, date, loc)
	second := BuildDaySlots(pkg, nil, bookings, nil, date, loc)
	assert.Equal(t, first, second)
}

func TestSlot_AvailableUnitsClampedAtZero(t *testing.T) {
	s := Slot{Capacity: 3, BookedCount: 5}
	assert.Equal(t, 0, s.AvailableUnits())
	assert.True(t, s.IsFull())
}
