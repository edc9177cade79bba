package get_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kritsadaK/TTB-BookingService/internal/api/handlers"
	bookingsService "github.com/kritsadaK/TTB-BookingService/internal/service/bookings"
	"github.com/kritsadaK/TTB-BookingService/internal/service/bookings/models"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime    = "некорректный формат времени, ожидается HH:MM"
	msgInvalidRequest = "некорректные параметры запроса"
)

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

// Handle GET /api/v1/packages/{packageId}/bookings?date=YYYY-MM-DD&time=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]
	query := r.URL.Query()

	req := &models.GetPackageBookingsRequest{PackageID: packageID}

	if rawDate := query.Get("date"); rawDate != "" {
		date, err := types.NewCivilDateFromString(rawDate)
		if err != nil {
			h.logger.Warn("GET /packages/{id}/bookings - Invalid date=%s: %v", rawDate, err)
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidDate)
			return
		}
		req.Date = date
	}

	if rawTime := query.Get("time"); rawTime != "" {
		slotTime, err := types.NewTimeStringFromString(rawTime)
		if err != nil {
			h.logger.Warn("GET /packages/{id}/bookings - Invalid time=%s: %v", rawTime, err)
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidTime)
			return
		}
		req.Time = slotTime
	}

	result, err := h.service.GetPackageBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /packages/{id}/bookings - Invalid input: package_id=%s, error=%v", packageID, err)
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidRequest)

		default:
			h.logger.Error("GET /packages/{id}/bookings - Failed: package_id=%s, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /packages/{id}/bookings - Returned %d bookings: package_id=%s", result.Total, packageID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
