package create_booking

import "errors"

// Бизнес-отказы валидатора. Каждый отказ — структурный результат, а не сбой:
// usecase доводит проверку до первого нарушенного правила и возвращает
// соответствующий sentinel с деталью через %w
var (
	// ErrPackageNotFound возвращается, когда пакет не найден в каталоге
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrSlotNotFound возвращается, когда у пакета нет слота на запрошенные
	// дату и время, либо слот явно помечен недоступным
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrMinimumNotMet возвращается, когда первое бронирование пустого слота
	// не добирает минимум человек
	ErrMinimumNotMet = errors.New("create_booking: minimum person not met")

	// ErrAdultRequired возвращается при нуле взрослых в запросе
	ErrAdultRequired = errors.New("create_booking: at least one adult is required")

	// ErrMaximumExceeded возвращается при превышении maximumPerson пакета
	ErrMaximumExceeded = errors.New("create_booking: maximum person exceeded")

	// ErrInsufficientCapacity возвращается, когда запрошенных мест больше,
	// чем осталось в слоте
	ErrInsufficientCapacity = errors.New("create_booking: insufficient capacity")

	// ErrPickupRequired возвращается для трансфера без места посадки
	ErrPickupRequired = errors.New("create_booking: pickup location is required")

	// ErrInvalidContact возвращается при пустых или некорректных контактных данных
	ErrInvalidContact = errors.New("create_booking: invalid contact info")

	// ErrInvalidInput возвращается при структурно некорректных входных данных
	// (отрицательные счётчики, битые дата/время) — это MALFORMED_INPUT,
	// отдельный от бизнес-таксономии
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStoreRejected возвращается, когда хранилище отклонило создание
	// (слот успели занять между проверкой и записью)
	ErrStoreRejected = errors.New("create_booking: rejected by booking store")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
