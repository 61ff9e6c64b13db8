package appointments

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stastashpulatov/clinic-bot/internal/pagination"
)

// Repository reads and writes the plugin's appointment tables. The table
// prefix matches the WordPress install (e.g. "wp_" or "ae3rf_"), so names
// are interpolated once here; all values go through placeholders.
type Repository struct {
	db     *sql.DB
	prefix string
}

func NewRepository(db *sql.DB, tablePrefix string) *Repository {
	return &Repository{db: db, prefix: tablePrefix}
}

func (r *Repository) appointmentsTable() string {
	return r.prefix + "kc_appointments"
}

func (r *Repository) patientDetailsTable() string {
	return r.prefix + "kc_patient_details"
}

func (r *Repository) usersTable() string {
	return r.prefix + "users"
}

func (r *Repository) ListBookedSlots(ctx context.Context, doctorID int64, date string) ([]BookedSlot, error) {
	query := fmt.Sprintf(`
		SELECT appointment_start_time::text, status
		FROM %s
		WHERE doctor_id = $1
		  AND appointment_start_date = $2
		  AND status != %d
	`, r.appointmentsTable(), StatusCancelled)

	rows, err := r.db.QueryContext(ctx, query, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked slots: %w", err)
	}
	defer rows.Close()

	var slots []BookedSlot
	for rows.Next() {
		var slot BookedSlot
		if err := rows.Scan(&slot.Time, &slot.Status); err != nil {
			return nil, fmt.Errorf("failed to scan booked slot: %w", err)
		}
		slots = append(slots, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booked slots: %w", err)
	}

	return slots, nil
}

func (r *Repository) Insert(ctx context.Context, apt NewAppointment) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s
		(appointment_start_date, appointment_start_time, appointment_end_date, appointment_end_time,
		 clinic_id, doctor_id, patient_id, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, r.appointmentsTable())

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		apt.StartDate,
		apt.StartTime,
		apt.EndDate,
		apt.EndTime,
		apt.ClinicID,
		apt.DoctorID,
		apt.PatientID,
		apt.Status,
		apt.Description,
		apt.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert appointment: %w", err)
	}

	return id, nil
}

// SetStatus overwrites the status field. A missing row is not an error; the
// update simply affects nothing, which keeps cancellation idempotent.
func (r *Repository) SetStatus(ctx context.Context, appointmentID int64, status int) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2`, r.appointmentsTable())

	if _, err := r.db.ExecContext(ctx, query, status, appointmentID); err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	return nil
}

func (r *Repository) ListForPatient(ctx context.Context, patientID int64) ([]PatientRow, error) {
	query := fmt.Sprintf(`
		SELECT a.id, a.doctor_id, a.appointment_start_date::text, a.appointment_start_time::text,
		       a.status, d.display_name
		FROM %s a
		LEFT JOIN %s d ON d.id = a.doctor_id
		WHERE a.patient_id = $1
		  AND a.status NOT IN (%d, %d, %d)
		  AND a.appointment_start_date >= CURRENT_DATE
		ORDER BY a.appointment_start_date ASC, a.appointment_start_time ASC
	`, r.appointmentsTable(), r.usersTable(), StatusCancelled, StatusVisited, StatusNoShow)

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query patient appointments: %w", err)
	}
	defer rows.Close()

	var result []PatientRow
	for rows.Next() {
		var row PatientRow
		var doctorName sql.NullString
		if err := rows.Scan(&row.ID, &row.DoctorID, &row.Date, &row.Time, &row.Status, &doctorName); err != nil {
			return nil, fmt.Errorf("failed to scan patient appointment: %w", err)
		}
		if doctorName.Valid {
			row.DoctorName = &doctorName.String
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patient appointments: %w", err)
	}

	return result, nil
}

func (r *Repository) ListUpcoming(ctx context.Context, limit pagination.Limit) ([]AdminRow, error) {
	query := fmt.Sprintf(`
		SELECT a.id, a.doctor_id, d.display_name, a.patient_id,
		       a.appointment_start_date::text, a.appointment_start_time::text,
		       a.status, COALESCE(a.description, ''),
		       (pd.id IS NOT NULL), pd.mobile_number, pu.display_name, pu.user_login
		FROM %s a
		LEFT JOIN %s d ON d.id = a.doctor_id
		LEFT JOIN %s pd ON pd.id = a.patient_id
		LEFT JOIN %s pu ON pu.id = pd.user_id
		WHERE a.appointment_start_date >= CURRENT_DATE
		  AND a.appointment_start_date <= CURRENT_DATE + INTERVAL '1 month'
		  AND a.status != %d
		ORDER BY a.appointment_start_date ASC, a.appointment_start_time ASC
	`, r.appointmentsTable(), r.usersTable(), r.patientDetailsTable(), r.usersTable(), StatusCancelled)

	var (
		rows *sql.Rows
		err  error
	)
	if limit.Unlimited {
		rows, err = r.db.QueryContext(ctx, query)
	} else {
		rows, err = r.db.QueryContext(ctx, query+" LIMIT $1", limit.N)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming appointments: %w", err)
	}
	defer rows.Close()

	var result []AdminRow
	for rows.Next() {
		var row AdminRow
		var doctorName, detailPhone, accountName, accountLogin sql.NullString
		err := rows.Scan(
			&row.ID,
			&row.DoctorID,
			&doctorName,
			&row.PatientID,
			&row.Date,
			&row.Time,
			&row.Status,
			&row.Description,
			&row.DetailFound,
			&detailPhone,
			&accountName,
			&accountLogin,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upcoming appointment: %w", err)
		}
		if doctorName.Valid {
			row.DoctorName = &doctorName.String
		}
		if detailPhone.Valid {
			row.DetailPhone = &detailPhone.String
		}
		if accountName.Valid {
			row.AccountName = &accountName.String
		}
		if accountLogin.Valid {
			row.AccountLogin = &accountLogin.String
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upcoming appointments: %w", err)
	}

	return result, nil
}
