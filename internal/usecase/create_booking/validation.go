package create_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
)

// emailPattern стандартный шаблон local@domain.tld
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// validateRequest отсекает структурно некорректные запросы (MALFORMED_INPUT)
// Бизнес-правила проверяются отдельно в validateAgainstSlot
func validateRequest(req *Request) error {
	if req.PackageID == "" {
		return fmt.Errorf("%w: packageID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Adults < 0 || req.Children < 0 {
		return fmt.Errorf("%w: adults and children must be non-negative", ErrInvalidInput)
	}

	if len(req.PickupLocation) > domain.MaxPickupLocationLength {
		return fmt.Errorf("%w: pickup location too long", ErrInvalidInput)
	}

	if len(req.ContactName) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: contact name too long", ErrInvalidInput)
	}

	return nil
}

// validateAgainstSlot прогоняет упорядоченные бизнес-проверки по текущему
// состоянию слота и останавливается на первом нарушении
//
// Порядок фиксирован:
//  1. слот существует и не выключен
//  2. минимум на первое бронирование (только для пустого слота)
//  3. хотя бы один взрослый
//  4. потолок пакета maximumPerson
//  5. остаток вместимости слота
//  6. место посадки для трансфера
//  7. контактные данные
func validateAgainstSlot(req *Request, pkg *domain.Package, slot domain.Slot, found bool) error {
	party := req.Adults + req.Children

	// 1. Слот должен существовать; выключенный админом слот для новых
	// бронирований неотличим от несуществующего
	if !found {
		return fmt.Errorf("%w: no slot at %s on %s", ErrSlotNotFound, req.Time, req.Date)
	}
	if !slot.IsAvailable {
		return fmt.Errorf("%w: slot at %s on %s is marked unavailable", ErrSlotNotFound, req.Time, req.Date)
	}

	// 2. Первое бронирование обязано добрать минимум слота
	if slot.IsEmpty() && party < slot.MinimumPerson {
		return fmt.Errorf("%w: need %d, have %d", ErrMinimumNotMet, slot.MinimumPerson, party)
	}

	// 3. Взрослый нужен всегда, даже когда слот уже открыт
	if req.Adults < 1 {
		return ErrAdultRequired
	}

	// 4. Потолок пакета
	if pkg.MaximumPerson != nil && *pkg.MaximumPerson > 0 && party > *pkg.MaximumPerson {
		return fmt.Errorf("%w: limit is %d", ErrMaximumExceeded, *pkg.MaximumPerson)
	}

	// 5. Остаток вместимости (уже обрезан нулём)
	if available := slot.AvailableUnits(); party > available {
		return fmt.Errorf("%w: only %d left", ErrInsufficientCapacity, available)
	}

	// 6. Трансфер без места посадки не принимаем
	if pkg.IsTransfer() && strings.TrimSpace(req.PickupLocation) == "" {
		return ErrPickupRequired
	}

	// 7. Контактные данные
	if err := validateContact(req); err != nil {
		return err
	}

	return nil
}

// validateContact проверяет контактные поля, называя конкретное поле в детали
func validateContact(req *Request) error {
	if strings.TrimSpace(req.ContactName) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	}
	if strings.TrimSpace(req.ContactEmail) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	}
	if !emailPattern.MatchString(req.ContactEmail) {
		return fmt.Errorf("%w: email is malformed", ErrInvalidContact)
	}
	if strings.TrimSpace(req.ContactPhone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidContact)
	}
	return nil
}
