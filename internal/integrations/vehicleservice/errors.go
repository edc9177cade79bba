package vehicleservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("vehicleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("vehicleservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что реестр транспорта недоступен и расчёт вместимости
	// пойдёт по дефолтным значениям пакетов
	ErrServiceDegraded = errors.New("vehicleservice unavailable: graceful degradation applied")
)
