package domain

// Default capacity values
const (
	// DefaultMaxPerson потолок вместимости слота, когда пакет не задаёт
	// maximumPerson и транспорт не найден в реестре
	DefaultMaxPerson = 15

	// DefaultMinimumPerson минимум на первое бронирование, если пакет его не задаёт
	DefaultMinimumPerson = 1

	// PrivateTourGroupSize размер группы для тарификации приватных туров:
	// цена берётся за каждые начатые PrivateTourGroupSize взрослых
	PrivateTourGroupSize = 8
)

// Business validation constants
const (
	MaxPickupLocationLength = 300
	MaxContactNameLength    = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
