package catalogservice

import (
	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// wirePackage модель пакета на проводе каталога
// Каталог исторически отдаёт туры и трансферы в слегка разных формах,
// поэтому поля обоих вариантов собраны здесь и сводятся в domain.Package
// единственный раз — на границе клиента
type wirePackage struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Type          string   `json:"type"`    // "tour" | "transfer"
	SubType       string   `json:"subtype"` // "co-tour"/"private" или "Van"/"Van + Ferry"/"Private"
	Vehicle       string   `json:"vehicle,omitempty"`
	AdultPrice    float64  `json:"newPrice"`
	ChildPrice    float64  `json:"childPrice"`
	MinimumPerson int      `json:"minimumPerson"`
	MaximumPerson *int     `json:"maximumPerson,omitempty"`
	Times         []string `json:"times"`
	IsAvailable   bool     `json:"isAvailable"`
}

// listResponse ответ списка пакетов
// Бэкенд отвечает одним из ключей в зависимости от типа; берём первый непустой
type listResponse struct {
	Tours     []wirePackage `json:"tours"`
	Transfers []wirePackage `json:"transfers"`
	Data      []wirePackage `json:"data"`
}

func (r *listResponse) packages() []wirePackage {
	switch {
	case len(r.Tours) > 0:
		return r.Tours
	case len(r.Transfers) > 0:
		return r.Transfers
	default:
		return r.Data
	}
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toDomain конвертирует wire модель в domain.Package
// Времена с некорректным форматом отбрасываются, а не роняют весь пакет
func (p *wirePackage) toDomain() *domain.Package {
	pkgTimes := make([]types.TimeString, 0, len(p.Times))
	for _, raw := range p.Times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			continue
		}
		pkgTimes = append(pkgTimes, t)
	}

	return &domain.Package{
		ID:            p.ID,
		Title:         p.Title,
		Kind:          domain.PackageKind(p.Type),
		SubType:       p.SubType,
		VehicleName:   p.Vehicle,
		AdultPrice:    p.AdultPrice,
		ChildPrice:    p.ChildPrice,
		MinimumPerson: p.MinimumPerson,
		MaximumPerson: p.MaximumPerson,
		Times:         pkgTimes,
		IsAvailable:   p.IsAvailable,
	}
}
