package appointments

import "time"

// DefaultClinicID is the fixed clinic reference used for every booking; the
// deployment runs a single clinic.
const DefaultClinicID = 1

// Duration is the fixed appointment length used to compute end times.
const Duration = 30 * time.Minute

// BookedSlot is the projection returned by the slot query.
type BookedSlot struct {
	Time   string `json:"time"` // HH:MM
	Status int    `json:"status"`
}

// CreateRequest carries the booking parameters supplied by the bot.
type CreateRequest struct {
	DoctorID     int64
	Date         string // YYYY-MM-DD
	Time         string // HH:MM or HH:MM:SS
	PatientName  string
	PatientPhone string
	TelegramID   string // optional
}

// CreateResult reports the inserted appointment and the account it was
// booked for.
type CreateResult struct {
	AppointmentID int64
	PatientID     int64
}

// NewAppointment is the row shape handed to the repository insert.
type NewAppointment struct {
	StartDate   string
	StartTime   string // HH:MM:SS
	EndDate     string
	EndTime     string // HH:MM:SS
	ClinicID    int64
	DoctorID    int64
	PatientID   int64
	Status      int
	Description string
	CreatedAt   time.Time
}

// PatientAppointment is one row of a patient's upcoming listing.
type PatientAppointment struct {
	ID     int64  `json:"id"`
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"` // HH:MM
	Status int    `json:"status"`
}

// PatientRow is the raw repository row behind PatientAppointment. The doctor
// account may be gone, hence the optional name.
type PatientRow struct {
	ID         int64
	DoctorID   int64
	DoctorName *string
	Date       string
	Time       string // HH:MM:SS
	Status     int
}

// AdminRow is the appointment + patient-detail + account join row feeding
// the admin listing. Columns from the left joins are optional; identity
// reconstruction cascades over whatever is present.
type AdminRow struct {
	ID          int64
	DoctorID    int64
	DoctorName  *string
	PatientID   int64
	Date        string
	Time        string // HH:MM:SS
	Status      int
	Description string

	// From the kc_patient_details join
	DetailFound bool
	DetailPhone *string

	// From the detail's linked account
	AccountName  *string
	AccountLogin *string
}

// AdminAppointment is one shaped row of the admin listing.
type AdminAppointment struct {
	ID              int64   `json:"id"`
	DoctorName      string  `json:"doctor_name"`
	PatientName     string  `json:"user_name"`
	PatientPhone    string  `json:"user_phone"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"` // HH:MM
	Status          string  `json:"status"`
	Source          string  `json:"source"`
	TelegramID      *string `json:"telegram_id"`
}
