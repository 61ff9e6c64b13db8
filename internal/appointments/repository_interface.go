package appointments

import (
	"context"

	"github.com/stastashpulatov/clinic-bot/internal/pagination"
)

// RepositoryInterface defines the data access contract for appointments
type RepositoryInterface interface {
	ListBookedSlots(ctx context.Context, doctorID int64, date string) ([]BookedSlot, error)
	Insert(ctx context.Context, apt NewAppointment) (int64, error)
	SetStatus(ctx context.Context, appointmentID int64, status int) error
	ListForPatient(ctx context.Context, patientID int64) ([]PatientRow, error)
	ListUpcoming(ctx context.Context, limit pagination.Limit) ([]AdminRow, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
