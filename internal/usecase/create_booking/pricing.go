package create_booking

import "github.com/kritsadaK/TTB-BookingService/internal/domain"

// computeTotal считает итоговую стоимость бронирования.
//
// Приватные туры тарифицируются группами: цена пакета берётся за каждые
// начатые PrivateTourGroupSize взрослых, дети в группу не входят.
// Все остальные пакеты считаются по головам: взрослые по AdultPrice,
// дети по ChildPrice
func computeTotal(pkg *domain.Package, adults, children int) float64 {
	if pkg.IsPrivateTour() {
		groups := (adults + domain.PrivateTourGroupSize - 1) / domain.PrivateTourGroupSize
		return float64(groups) * pkg.AdultPrice
	}

	return float64(adults)*pkg.AdultPrice + float64(children)*pkg.ChildPrice
}
