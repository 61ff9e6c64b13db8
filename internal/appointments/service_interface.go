package appointments

import (
	"context"

	"github.com/stastashpulatov/clinic-bot/internal/pagination"
)

// ServiceInterface defines the business contract exposed to the handler
type ServiceInterface interface {
	BookedSlots(ctx context.Context, doctorID int64, date string) ([]BookedSlot, error)
	AvailableSlots(ctx context.Context, doctorID int64, date string) ([]string, error)
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	Cancel(ctx context.Context, appointmentID int64) error
	UpdateStatus(ctx context.Context, appointmentID int64, status int) error
	PatientAppointments(ctx context.Context, telegramID string) ([]PatientAppointment, error)
	Upcoming(ctx context.Context, limit pagination.Limit) ([]AdminAppointment, error)
}

// PatientDirectory is what the booking flow needs from the patients package:
// resolve-or-create for bookings, plain lookup for listings.
type PatientDirectory interface {
	ResolveOrCreate(ctx context.Context, telegramID, displayName, phone string) (int64, error)
	FindByTelegramID(ctx context.Context, telegramID string) (int64, bool, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
