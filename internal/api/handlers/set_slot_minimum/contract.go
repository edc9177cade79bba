package set_slot_minimum

import (
	"context"

	"github.com/kritsadaK/TTB-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	SetSlotMinimum(ctx context.Context, req *models.SetMinimumRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
