package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kritsadaK/TTB-BookingService/pkg/ptr"
)

func TestEffectiveCapacity(t *testing.T) {
	registry := NewVehicleRegistry([]Vehicle{
		{Name: "Van A", Units: 3},
		{Name: "Van B", Units: 5},
		{Name: "Broken", Units: 0}, // отбрасывается при построении реестра
	})

	tests := []struct {
		name string
		pkg  *Package
		want int
	}{
		{
			name: "private transfer with registered vehicle uses unit count",
			pkg: &Package{
				ID:          "tr-1",
				Kind:        KindTransfer,
				SubType:     TransferSubTypePrivate,
				VehicleName: "Van A",
			},
			want: 3,
		},
		{
			name: "private sub-type match is case-insensitive",
			pkg: &Package{
				ID:          "tr-2",
				Kind:        KindTransfer,
				SubType:     "private",
				VehicleName: "Van B",
			},
			want: 5,
		},
		{
			name: "private transfer with unknown vehicle falls back to maximumPerson",
			pkg: &Package{
				ID:            "tr-3",
				Kind:          KindTransfer,
				SubType:       TransferSubTypePrivate,
				VehicleName:   "Van Z",
				MaximumPerson: ptr.Ptr(8),
			},
			want: 8,
		},
		{
			name: "private transfer with dropped zero-unit vehicle falls back to default",
			pkg: &Package{
				ID:          "tr-4",
				Kind:        KindTransfer,
				SubType:     TransferSubTypePrivate,
				VehicleName: "Broken",
			},
			want: DefaultMaxPerson,
		},
		{
			name: "group transfer ignores vehicle and uses maximumPerson",
			pkg: &Package{
				ID:            "tr-5",
				Kind:          KindTransfer,
				SubType:       TransferSubTypeVanFerry,
				VehicleName:   "Van A",
				MaximumPerson: ptr.Ptr(12),
			},
			want: 12,
		},
		{
			name: "tour with maximumPerson",
			pkg: &Package{
				ID:            "t-1",
				Kind:          KindTour,
				SubType:       TourSubTypeCoTour,
				MaximumPerson: ptr.Ptr(30),
			},
			want: 30,
		},
		{
			name: "tour without maximumPerson uses default",
			pkg:  &Package{ID: "t-2", Kind: KindTour, SubType: TourSubTypeCoTour},
			want: DefaultMaxPerson,
		},
		{
			name: "non-positive maximumPerson degrades to default",
			pkg:  &Package{ID: "t-3", Kind: KindTour, MaximumPerson: ptr.Ptr(0)},
			want: DefaultMaxPerson,
		},
		{
			name: "nil package degrades to default",
			pkg:  nil,
			want: DefaultMaxPerson,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveCapacity(tt.pkg, registry))
		})
	}
}
