package toggle_slot_availability

import (
	"errors"
	"net/http"

	"github.com/kritsadaK/TTB-BookingService/internal/api/handlers"
	bookingsService "github.com/kritsadaK/TTB-BookingService/internal/service/bookings"
	"github.com/kritsadaK/TTB-BookingService/internal/service/bookings/models"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgPackageNotFound    = "пакет не найден"
	msgInvalidRequest     = "некорректные параметры запроса"
)

const codePackageNotFound = "PACKAGE_NOT_FOUND"

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	PackageID   string `json:"packageId"`
	Date        string `json:"date"` // "2025-10-15"
	Time        string `json:"time"` // "09:00"
	IsAvailable bool   `json:"isAvailable"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/timeslots/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /timeslots/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidRequestBody)
		return
	}

	date, err := types.NewCivilDateFromString(req.Date)
	if err != nil {
		h.logger.Warn("PUT /timeslots/availability - Invalid date=%s: %v", req.Date, err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidDate)
		return
	}

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("PUT /timeslots/availability - Invalid time=%s: %v", req.Time, err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidTime)
		return
	}

	serviceErr := h.service.ToggleSlotAvailability(r.Context(), &models.ToggleSlotRequest{
		PackageID:   req.PackageID,
		Date:        date,
		Time:        slotTime,
		IsAvailable: req.IsAvailable,
	})
	if serviceErr != nil {
		switch {
		case errors.Is(serviceErr, bookingsService.ErrPackageNotFound):
			h.logger.Warn("PUT /timeslots/availability - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, codePackageNotFound, msgPackageNotFound)

		case errors.Is(serviceErr, bookingsService.ErrInvalidInput):
			h.logger.Warn("PUT /timeslots/availability - Invalid input: package_id=%s, error=%v",
				req.PackageID, serviceErr)
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidRequest)

		default:
			h.logger.Error("PUT /timeslots/availability - Failed: package_id=%s, error=%v",
				req.PackageID, serviceErr)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /timeslots/availability - Slot toggled: package_id=%s, date=%s, time=%s, available=%t",
		req.PackageID, req.Date, req.Time, req.IsAvailable)
	handlers.RespondNoContent(w)
}
