package domain

import (
	"strings"

	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// PackageKind represents the kind of a bookable package
type PackageKind string

const (
	KindTour     PackageKind = "tour"
	KindTransfer PackageKind = "transfer"
)

// Tour sub-types
const (
	TourSubTypeCoTour  = "co-tour"
	TourSubTypePrivate = "private"
)

// Transfer sub-types (as the catalog stores them)
const (
	TransferSubTypeVan      = "Van"
	TransferSubTypeVanFerry = "Van + Ferry"
	TransferSubTypePrivate  = "Private"
)

// Package represents a bookable tour or transfer from the package catalog.
// Packages are read-only inputs: the catalog service owns their lifecycle
type Package struct {
	ID            string
	Title         string
	Kind          PackageKind
	SubType       string
	VehicleName   string // join key into the vehicle registry, private transfers only
	AdultPrice    float64
	ChildPrice    float64
	MinimumPerson int
	MaximumPerson *int // nil = no explicit ceiling, resolver falls back
	Times         []types.TimeString
	IsAvailable   bool
}

// IsTour returns true if the package is a tour
func (p *Package) IsTour() bool {
	return p.Kind == KindTour
}

// IsTransfer returns true if the package is a transfer
func (p *Package) IsTransfer() bool {
	return p.Kind == KindTransfer
}

// IsPrivateTransfer returns true for transfers billed per vehicle unit.
// Сравнение подтипа без учёта регистра: каталог хранит и "Private", и "private"
func (p *Package) IsPrivateTransfer() bool {
	return p.Kind == KindTransfer && strings.EqualFold(p.SubType, TransferSubTypePrivate)
}

// IsPrivateTour returns true for tours priced per group band rather than per seat
func (p *Package) IsPrivateTour() bool {
	return p.Kind == KindTour && strings.EqualFold(p.SubType, TourSubTypePrivate)
}

// HasScheduledTime returns true if t is one of the package's declared start times
func (p *Package) HasScheduledTime(t types.TimeString) bool {
	for _, scheduled := range p.Times {
		if scheduled == t {
			return true
		}
	}
	return false
}

// EffectiveMinimum returns the package-level first-booking minimum
func (p *Package) EffectiveMinimum() int {
	if p.MinimumPerson >= 1 {
		return p.MinimumPerson
	}
	return DefaultMinimumPerson
}
