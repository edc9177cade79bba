package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/pkg/ptr"
)

func tourPackage() *domain.Package {
	return &domain.Package{
		ID:            "tour-1",
		Kind:          domain.KindTour,
		SubType:       domain.TourSubTypeCoTour,
		MinimumPerson: 4,
		MaximumPerson: ptr.Ptr(20),
	}
}

func openSlot(booked int) domain.Slot {
	return domain.Slot{
		PackageID:     "tour-1",
		Date:          "2025-10-15",
		Time:          "09:00",
		Capacity:      20,
		BookedCount:   booked,
		IsAvailable:   true,
		MinimumPerson: 4,
	}
}

func validContact(req *Request) *Request {
	req.ContactName = "Somchai"
	req.ContactEmail = "somchai@example.com"
	req.ContactPhone = "+66 81 234 5678"
	return req
}

func TestValidateAgainstSlot_Ordering(t *testing.T) {
	pkg := tourPackage()

	tests := []struct {
		name    string
		req     *Request
		slot    domain.Slot
		found   bool
		wantErr error
	}{
		{
			name:    "slot not found",
			req:     validContact(&Request{Date: "2025-10-15", Time: "10:00", Adults: 4}),
			found:   false,
			wantErr: ErrSlotNotFound,
		},
		{
			name: "toggled-off slot behaves as not found",
			req:  validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 4}),
			slot: func() domain.Slot {
				s := openSlot(0)
				s.IsAvailable = false
				return s
			}(),
			found:   true,
			wantErr: ErrSlotNotFound,
		},
		{
			// Scenario A: минимум 4, слот пуст, просят 2
			name:    "first booking below minimum",
			req:     validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 2}),
			slot:    openSlot(0),
			found:   true,
			wantErr: ErrMinimumNotMet,
		},
		{
			// Scenario B: после первого бронирования минимум не действует
			name:  "subsequent booking only needs one adult",
			req:   validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 1}),
			slot:  openSlot(4),
			found: true,
		},
		{
			name:    "zero adults rejected even on open slot",
			req:     validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 0, Children: 2}),
			slot:    openSlot(4),
			found:   true,
			wantErr: ErrAdultRequired,
		},
		{
			name:    "package maximum exceeded",
			req:     validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 18, Children: 5}),
			slot:    openSlot(4),
			found:   true,
			wantErr: ErrMaximumExceeded,
		},
		{
			name:    "insufficient remaining capacity",
			req:     validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 4}),
			slot:    openSlot(18),
			found:   true,
			wantErr: ErrInsufficientCapacity,
		},
		{
			name:    "contact name required",
			req:     &Request{Date: "2025-10-15", Time: "09:00", Adults: 4, ContactEmail: "a@b.co", ContactPhone: "1"},
			slot:    openSlot(0),
			found:   true,
			wantErr: ErrInvalidContact,
		},
		{
			name:    "malformed email",
			req:     &Request{Date: "2025-10-15", Time: "09:00", Adults: 4, ContactName: "A", ContactEmail: "not-an-email", ContactPhone: "1"},
			slot:    openSlot(0),
			found:   true,
			wantErr: ErrInvalidContact,
		},
		{
			name:    "phone required",
			req:     &Request{Date: "2025-10-15", Time: "09:00", Adults: 4, ContactName: "A", ContactEmail: "a@b.co"},
			slot:    openSlot(0),
			found:   true,
			wantErr: ErrInvalidContact,
		},
		{
			name:  "accept at exact minimum",
			req:   validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 4}),
			slot:  openSlot(0),
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAgainstSlot(tt.req, pkg, tt.slot, tt.found)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAgainstSlot_MinimumDeficitDetail(t *testing.T) {
	// Scenario A: detail называет требуемое и фактическое
	req := validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 2})
	err := validateAgainstSlot(req, tourPackage(), openSlot(0), true)
	assert.ErrorIs(t, err, ErrMinimumNotMet)
	assert.Contains(t, err.Error(), "need 4, have 2")
}

func TestValidateAgainstSlot_RemainingCountDetail(t *testing.T) {
	req := validContact(&Request{Date: "2025-10-15", Time: "09:00", Adults: 5})
	err := validateAgainstSlot(req, tourPackage(), openSlot(17), true)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.Contains(t, err.Error(), "only 3 left")
}

func TestValidateAgainstSlot_TransferPickupRequired(t *testing.T) {
	// Scenario F
	pkg := &domain.Package{
		ID:            "tr-1",
		Kind:          domain.KindTransfer,
		SubType:       domain.TransferSubTypeVan,
		MinimumPerson: 1,
	}
	slot := domain.Slot{Capacity: 10, IsAvailable: true, MinimumPerson: 1}

	req := validContact(&Request{Date: "2025-10-15", Time: "08:00", Adults: 2})
	assert.ErrorIs(t, validateAgainstSlot(req, pkg, slot, true), ErrPickupRequired)

	req.PickupLocation = "Patong Beach Hotel"
	assert.NoError(t, validateAgainstSlot(req, pkg, slot, true))
}

func TestValidateRequest_MalformedInput(t *testing.T) {
	base := func() *Request {
		return validContact(&Request{PackageID: "tour-1", Date: "2025-10-15", Time: "09:00", Adults: 2})
	}

	assert.NoError(t, validateRequest(base()))

	req := base()
	req.Adults = -1
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = base()
	req.Time = "9 o'clock"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = base()
	req.Date = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = base()
	req.PackageID = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
