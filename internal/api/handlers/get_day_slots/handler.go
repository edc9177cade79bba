package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kritsadaK/TTB-BookingService/internal/api/handlers"
	getDaySlots "github.com/kritsadaK/TTB-BookingService/internal/usecase/get_day_slots"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

const (
	msgMissingDate     = "не указана дата, ожидается параметр date=YYYY-MM-DD"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPackageNotFound = "пакет не найден"
	msgInvalidRequest  = "некорректные параметры запроса"
)

const codePackageNotFound = "PACKAGE_NOT_FOUND"

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID := mux.Vars(r)["packageId"]

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /packages/{id}/slots - Missing date parameter: package_id=%s", packageID)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgMissingDate)
		return
	}

	date, err := types.NewCivilDateFromString(rawDate)
	if err != nil {
		h.logger.Warn("GET /packages/{id}/slots - Invalid date=%s: %v", rawDate, err)
		handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{
		PackageID: packageID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id}/slots - Package not found: package_id=%s", packageID)
			handlers.RespondNotFound(w, codePackageNotFound, msgPackageNotFound)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /packages/{id}/slots - Invalid input: package_id=%s, error=%v", packageID, err)
			handlers.RespondBadRequest(w, handlers.CodeMalformedInput, msgInvalidRequest)

		default:
			h.logger.Error("GET /packages/{id}/slots - Failed: package_id=%s, date=%s, error=%v",
				packageID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /packages/{id}/slots - Returned %d slots: package_id=%s, date=%s",
		len(result.Slots), packageID, date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
