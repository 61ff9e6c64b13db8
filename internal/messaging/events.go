package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys as constants
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentCancelled     = "appointment.cancelled"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventAppointmentReminder      = "appointment.reminder"

	EventPatientCreated = "patient.created"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// AppointmentCreatedEvent announces a booking made through the bot API.
type AppointmentCreatedEvent struct {
	BaseEvent
	Data AppointmentCreatedData `json:"data"`
}

type AppointmentCreatedData struct {
	AppointmentID int64  `json:"appointment_id"`
	DoctorID      int64  `json:"doctor_id"`
	PatientID     int64  `json:"patient_id"`
	Date          string `json:"appointment_date"`
	Time          string `json:"appointment_time"`
	TelegramID    string `json:"telegram_id,omitempty"`
}

// AppointmentCancelledEvent announces a cancellation.
type AppointmentCancelledEvent struct {
	BaseEvent
	Data AppointmentCancelledData `json:"data"`
}

type AppointmentCancelledData struct {
	AppointmentID int64     `json:"appointment_id"`
	CancelledAt   time.Time `json:"cancelled_at"`
}

// AppointmentStatusChangedEvent announces an arbitrary status overwrite.
type AppointmentStatusChangedEvent struct {
	BaseEvent
	Data AppointmentStatusChangedData `json:"data"`
}

type AppointmentStatusChangedData struct {
	AppointmentID int64     `json:"appointment_id"`
	NewStatus     int       `json:"new_status"`
	StatusLabel   string    `json:"status_label"`
	ChangedAt     time.Time `json:"changed_at"`
}

// AppointmentReminderEvent asks the bot to remind a patient about a
// next-day appointment.
type AppointmentReminderEvent struct {
	BaseEvent
	Data AppointmentReminderData `json:"data"`
}

type AppointmentReminderData struct {
	AppointmentID int64  `json:"appointment_id"`
	TelegramID    string `json:"telegram_id"`
	DoctorName    string `json:"doctor_name"`
	Date          string `json:"appointment_date"`
	Time          string `json:"appointment_time"`
}

// PatientCreatedEvent announces a lazily created patient account.
type PatientCreatedEvent struct {
	BaseEvent
	Data PatientCreatedData `json:"data"`
}

type PatientCreatedData struct {
	PatientID   int64     `json:"patient_id"`
	Login       string    `json:"login"`
	DisplayName string    `json:"display_name"`
	TelegramID  string    `json:"telegram_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: "clinic-bot-api",
	}
}
