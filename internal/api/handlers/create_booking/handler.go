package create_booking

import (
	"errors"
	"net/http"

	"github.com/kritsadaK/TTB-BookingService/internal/api/handlers"
	createBooking "github.com/kritsadaK/TTB-BookingService/internal/usecase/create_booking"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// Коды отказов валидатора, машинная часть контракта API
const (
	codePackageNotFound      = "PACKAGE_NOT_FOUND"
	codeSlotNotFound         = "SLOT_NOT_FOUND"
	codeMinimumNotMet        = "MINIMUM_NOT_MET"
	codeAdultRequired        = "ADULT_REQUIRED"
	codeMaximumExceeded      = "MAXIMUM_EXCEEDED"
	codeInsufficientCapacity = "INSUFFICIENT_CAPACITY"
	codePickupRequired       = "PICKUP_REQUIRED"
	codeInvalidContact       = "INVALID_CONTACT"
	codeStoreRejected        = "STORE_REJECTED"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgPackageNotFound      = "пакет не найден"
	msgSlotNotFound         = "слот на указанные дату и время недоступен"
	msgMinimumNotMet        = "первое бронирование не добирает минимум человек"
	msgAdultRequired        = "требуется хотя бы один взрослый"
	msgMaximumExceeded      = "превышен максимум человек для пакета"
	msgInsufficientCapacity = "недостаточно мест в слоте"
	msgPickupRequired       = "для трансфера требуется место посадки"
	msgInvalidContact       = "некорректные контактные данные"
	msgMalformedInput       = "некорректные данные бронирования"
	msgStoreRejected        = "слот заняли раньше, попробуйте ещё раз"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		// Определяем, какое из полей не распарсилось
		if _, derr := types.NewCivilDateFromString(req.Date); derr != nil {
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отказы валидатора упорядочены в usecase, здесь только маппинг
		switch {
		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, codePackageNotFound, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: package_id=%s, date=%s, time=%s",
				req.PackageID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusUnprocessableEntity, codeSlotNotFound, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrMinimumNotMet):
			h.logger.Warn("POST /bookings - Minimum not met: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, codeMinimumNotMet, msgMinimumNotMet)

		case errors.Is(err, createBooking.ErrAdultRequired):
			h.logger.Warn("POST /bookings - Adult required: package_id=%s", req.PackageID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, codeAdultRequired, msgAdultRequired)

		case errors.Is(err, createBooking.ErrMaximumExceeded):
			h.logger.Warn("POST /bookings - Maximum exceeded: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, codeMaximumExceeded, msgMaximumExceeded)

		case errors.Is(err, createBooking.ErrInsufficientCapacity):
			h.logger.Warn("POST /bookings - Insufficient capacity: package_id=%s, time=%s, error=%v",
				req.PackageID, req.Time, err)
			handlers.RespondError(w, http.StatusConflict, codeInsufficientCapacity, msgInsufficientCapacity)

		case errors.Is(err, createBooking.ErrPickupRequired):
			h.logger.Warn("POST /bookings - Pickup required: package_id=%s", req.PackageID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, codePickupRequired, msgPickupRequired)

		case errors.Is(err, createBooking.ErrInvalidContact):
			h.logger.Warn("POST /bookings - Invalid contact: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, codeInvalidContact, msgInvalidContact)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: package_id=%s, error=%v", req.PackageID, err)
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgMalformedInput)

		case errors.Is(err, createBooking.ErrStoreRejected):
			h.logger.Warn("POST /bookings - Store rejected: package_id=%s, time=%s", req.PackageID, req.Time)
			handlers.RespondError(w, http.StatusConflict, codeStoreRejected, msgStoreRejected)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: package_id=%s, error=%v",
				req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, package_id=%s, total=%.2f",
		result.ID, req.PackageID, result.TotalCharge)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
