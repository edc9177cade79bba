package set_slot_minimum

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

// SetMinimumRequest HTTP request model
type SetMinimumRequest struct {
	PackageID     string `json:"packageId"`
	Date          string `json:"date"` // "2025-10-15"
	Time          string `json:"time"` // "09:00"
	MinimumPerson int    `json:"minimumPerson"`
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

// Handle PUT /api/v1/timeslots/minimum-person
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetMinimumRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /timeslots/minimum-person - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidRequestBody)
		return
	}

	date, err := types.NewCivilDateFromString(req.Date)
	if err != nil {
		h.logger.Warn("PUT /timeslots/minimum-person - Invalid date=%s: %v", req.Date, err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidDate)
		return
	}

	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("PUT /timeslots/minimum-person - Invalid time=%s: %v", req.Time, err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidTime)
		return
	}

	serviceErr := h.service.SetSlotMinimum(r.Context(), &models.SetMinimumRequest{
		PackageID:     req.PackageID,
		Date:          date,
		Time:          slotTime,
		MinimumPerson: req.MinimumPerson,
	})
	if serviceErr != nil {
		switch {
		case errors.Is(serviceErr, bookingsService.ErrPackageNotFound):
			h.logger.Warn("PUT /timeslots/minimum-person - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, codePackageNotFound, msgPackageNotFound)

		case errors.Is(serviceErr, bookingsService.ErrInvalidInput):
			h.logger.Warn("PUT /timeslots/minimum-person - Invalid input: package_id=%s, error=%v",
				req.PackageID, serviceErr)
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidRequest)

		default:
			h.logger.Error("PUT /timeslots/minimum-person - Failed: package_id=%s, error=%v",
				req.PackageID, serviceErr)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /timeslots/minimum-person - Minimum set: package_id=%s, date=%s, time=%s, minimum=%d",
		req.PackageID, req.Date, req.Time, req.MinimumPerson)
	handlers.RespondNoContent(w)
}
