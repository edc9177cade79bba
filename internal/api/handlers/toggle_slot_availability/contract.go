package toggle_slot_availability

import (
	"context"

	"github.com/kritsadaK/TTB-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	ToggleSlotAvailability(ctx context.Context, req *models.ToggleSlotRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
