package appointments

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/stastashpulatov/clinic-bot/internal/messaging"
	"github.com/stastashpulatov/clinic-bot/internal/pagination"
	"github.com/stastashpulatov/clinic-bot/internal/schedule"
)

type Service struct {
	repo      RepositoryInterface
	patients  PatientDirectory
	grid      schedule.Config
	publisher messaging.PublisherInterface
	now       func() time.Time
}

// NewService wires the appointment flows. publisher may be nil; events are
// best-effort and never fail a request.
func NewService(repo RepositoryInterface, patients PatientDirectory, grid schedule.Config, publisher messaging.PublisherInterface) *Service {
	return &Service{
		repo:      repo,
		patients:  patients,
		grid:      grid,
		publisher: publisher,
		now:       time.Now,
	}
}

// BookedSlots lists non-cancelled time/status pairs for a doctor and date.
func (s *Service) BookedSlots(ctx context.Context, doctorID int64, date string) ([]BookedSlot, error) {
	if doctorID == 0 || date == "" {
		return nil, ErrMissingDoctorOrDate
	}

	slots, err := s.repo.ListBookedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	// '10:00:00' -> '10:00'
	shaped := make([]BookedSlot, 0, len(slots))
	for _, slot := range slots {
		slot.Time = shortTime(slot.Time)
		shaped = append(shaped, slot)
	}
	return shaped, nil
}

// AvailableSlots computes the free times of a doctor's day: the working-hours
// grid minus booked slots, past times dropped when the date is today.
func (s *Service) AvailableSlots(ctx context.Context, doctorID int64, date string) ([]string, error) {
	booked, err := s.BookedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	occupied := make([]string, 0, len(booked))
	for _, slot := range booked {
		occupied = append(occupied, slot.Time)
	}

	return schedule.Available(s.grid, date, occupied, s.now()), nil
}

// Create resolves or creates the patient account, computes the end time and
// inserts one confirmed appointment row. The patient creation and the insert
// are not transactional: a failed insert can leave behind a fresh account,
// which the plugin tolerates.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if req.DoctorID == 0 || req.Date == "" || req.Time == "" || req.PatientName == "" {
		return nil, ErrMissingFields
	}

	patientID, err := s.patients.ResolveOrCreate(ctx, req.TelegramID, req.PatientName, req.PatientPhone)
	if err != nil {
		return nil, fmt.Errorf("cannot create patient user: %w", err)
	}

	startTime := normalizeTime(req.Time)
	start, err := time.Parse("2006-01-02 15:04:05", req.Date+" "+startTime)
	if err != nil {
		return nil, ErrBadDateTime
	}

	// End time from timestamp arithmetic so a 23:50 booking rolls the end
	// date over to the next day.
	end := start.Add(Duration)

	apt := NewAppointment{
		StartDate:   req.Date,
		StartTime:   startTime,
		EndDate:     end.Format("2006-01-02"),
		EndTime:     end.Format("15:04:05"),
		ClinicID:    DefaultClinicID,
		DoctorID:    req.DoctorID,
		PatientID:   patientID,
		Status:      StatusConfirmed,
		Description: fmt.Sprintf("%s. Пациент: %s, Тел: %s", botDescriptionMarker, req.PatientName, req.PatientPhone),
		CreatedAt:   s.now(),
	}

	id, err := s.repo.Insert(ctx, apt)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, messaging.EventAppointmentCreated, messaging.AppointmentCreatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentCreated),
		Data: messaging.AppointmentCreatedData{
			AppointmentID: id,
			DoctorID:      req.DoctorID,
			PatientID:     patientID,
			Date:          req.Date,
			Time:          startTime,
			TelegramID:    req.TelegramID,
		},
	})

	return &CreateResult{AppointmentID: id, PatientID: patientID}, nil
}

// Cancel sets the status to cancelled. No existence or ownership check;
// repeating the call is a no-op.
func (s *Service) Cancel(ctx context.Context, appointmentID int64) error {
	if appointmentID == 0 {
		return ErrMissingAppointment
	}

	if err := s.repo.SetStatus(ctx, appointmentID, StatusCancelled); err != nil {
		return err
	}

	s.publish(ctx, messaging.EventAppointmentCancelled, messaging.AppointmentCancelledEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentCancelled),
		Data: messaging.AppointmentCancelledData{
			AppointmentID: appointmentID,
			CancelledAt:   s.now().UTC(),
		},
	})

	return nil
}

// UpdateStatus overwrites the status with any caller-supplied integer, known
// to the enumeration or not.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, status int) error {
	if appointmentID == 0 {
		return ErrMissingAppointment
	}

	if err := s.repo.SetStatus(ctx, appointmentID, status); err != nil {
		return err
	}

	s.publish(ctx, messaging.EventAppointmentStatusChanged, messaging.AppointmentStatusChangedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentStatusChanged),
		Data: messaging.AppointmentStatusChangedData{
			AppointmentID: appointmentID,
			NewStatus:     status,
			StatusLabel:   StatusLabel(status),
			ChangedAt:     s.now().UTC(),
		},
	})

	return nil
}

// PatientAppointments lists a bot user's upcoming active appointments. An
// unknown Telegram ID yields an empty list, not an error.
func (s *Service) PatientAppointments(ctx context.Context, telegramID string) ([]PatientAppointment, error) {
	if telegramID == "" {
		return nil, ErrMissingTelegramID
	}

	patientID, found, err := s.patients.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []PatientAppointment{}, nil
	}

	rows, err := s.repo.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]PatientAppointment, 0, len(rows))
	for _, row := range rows {
		result = append(result, PatientAppointment{
			ID:     row.ID,
			Doctor: doctorDisplayName(row.DoctorName, row.DoctorID),
			Date:   row.Date,
			Time:   shortTime(row.Time),
			Status: row.Status,
		})
	}
	return result, nil
}

// Upcoming lists the next month's non-cancelled appointments for the admin
// view, reconstructing patient identity per row.
func (s *Service) Upcoming(ctx context.Context, limit pagination.Limit) ([]AdminAppointment, error) {
	rows, err := s.repo.ListUpcoming(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]AdminAppointment, 0, len(rows))
	for _, row := range rows {
		identity := ReconstructIdentity(row)

		apt := AdminAppointment{
			ID:              row.ID,
			DoctorName:      doctorDisplayName(row.DoctorName, row.DoctorID),
			PatientName:     identity.Name,
			PatientPhone:    identity.Phone,
			AppointmentDate: row.Date,
			AppointmentTime: shortTime(row.Time),
			Status:          StatusLabel(row.Status),
			Source:          identity.Source,
		}
		if identity.TelegramID != "" {
			tg := identity.TelegramID
			apt.TelegramID = &tg
		}
		result = append(result, apt)
	}
	return result, nil
}

func (s *Service) publish(ctx context.Context, routingKey string, event interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, event); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

func doctorDisplayName(name *string, doctorID int64) string {
	if name != nil && *name != "" {
		return *name
	}
	return fmt.Sprintf("Врач #%d", doctorID)
}

// shortTime truncates 'HH:MM:SS' to 'HH:MM'.
func shortTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// normalizeTime pads 'HH:MM' input to the 'HH:MM:SS' the plugin stores.
func normalizeTime(t string) string {
	if len(t) == 5 && strings.Count(t, ":") == 1 {
		return t + ":00"
	}
	return t
}
