package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/stastashpulatov/clinic-bot/internal/messaging"
	"github.com/stastashpulatov/clinic-bot/internal/patients"
)

// ReminderService publishes next-day reminder events for confirmed bot
// bookings. The Telegram bot consumes them and handles delivery and
// deduplication on its side.
type ReminderService struct {
	db        *sql.DB
	prefix    string
	publisher messaging.PublisherInterface
}

// NewReminderService creates a new reminder service
func NewReminderService(db *sql.DB, tablePrefix string, publisher messaging.PublisherInterface) *ReminderService {
	return &ReminderService{db: db, prefix: tablePrefix, publisher: publisher}
}

// DueTomorrowCount returns the number of confirmed appointments scheduled
// for tomorrow, whether or not a Telegram ID can be recovered for them.
func (s *ReminderService) DueTomorrowCount(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %skc_appointments
		WHERE appointment_start_date = CURRENT_DATE + 1
		  AND status = %d
	`, s.prefix, StatusConfirmed)

	var count int
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count due appointments: %w", err)
	}

	return count, nil
}

// SendReminders publishes one reminder event per confirmed appointment
// scheduled for tomorrow. Rows whose patient account does not carry a
// Telegram login are skipped; the bot has no way to reach those patients.
func (s *ReminderService) SendReminders(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`
		SELECT a.id, d.display_name, a.doctor_id,
		       a.appointment_start_date::text, a.appointment_start_time::text,
		       pu.user_login
		FROM %skc_appointments a
		LEFT JOIN %susers d ON d.id = a.doctor_id
		LEFT JOIN %skc_patient_details pd ON pd.id = a.patient_id
		LEFT JOIN %susers pu ON pu.id = pd.user_id
		WHERE a.appointment_start_date = CURRENT_DATE + 1
		  AND a.status = %d
		ORDER BY a.appointment_start_time ASC
	`, s.prefix, s.prefix, s.prefix, s.prefix, StatusConfirmed)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to query due appointments: %w", err)
	}
	defer rows.Close()

	type dueRow struct {
		ID         int64
		DoctorName *string
		DoctorID   int64
		Date       string
		Time       string
		Login      *string
	}

	var due []dueRow
	for rows.Next() {
		var row dueRow
		var doctorName, login sql.NullString
		if err := rows.Scan(&row.ID, &doctorName, &row.DoctorID, &row.Date, &row.Time, &login); err != nil {
			return 0, fmt.Errorf("failed to scan due appointment: %w", err)
		}
		if doctorName.Valid {
			row.DoctorName = &doctorName.String
		}
		if login.Valid {
			row.Login = &login.String
		}
		due = append(due, row)
	}

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating due appointments: %w", err)
	}

	sentCount := 0
	for _, row := range due {
		if row.Login == nil || !strings.HasPrefix(*row.Login, patients.TelegramLoginPrefix) {
			continue
		}
		telegramID := strings.TrimPrefix(*row.Login, patients.TelegramLoginPrefix)

		event := messaging.AppointmentReminderEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventAppointmentReminder),
			Data: messaging.AppointmentReminderData{
				AppointmentID: row.ID,
				TelegramID:    telegramID,
				DoctorName:    doctorDisplayName(row.DoctorName, row.DoctorID),
				Date:          row.Date,
				Time:          shortTime(row.Time),
			},
		}

		if err := s.publisher.Publish(ctx, messaging.EventAppointmentReminder, event); err != nil {
			log.Printf("Failed to publish reminder for appointment %d: %v", row.ID, err)
			continue
		}
		sentCount++
	}

	log.Printf("Published %d/%d reminder events", sentCount, len(due))
	return sentCount, nil
}
