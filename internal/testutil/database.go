package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
)

// TestTablePrefix is the WordPress table prefix used by the test database
const TestTablePrefix = "wp_"

// SetupTestDB creates a connection to the test database and bootstraps the
// plugin tables. Set CLINIC_TEST_DSN to point somewhere other than the
// local default.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	connStr := os.Getenv("CLINIC_TEST_DSN")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=postgres password=postgres dbname=clinic_test sslmode=disable"
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("Test database unavailable: %v", err)
	}

	createPluginTables(t, db)

	return db
}

// SetupTestTransaction creates a test database connection and begins a transaction
// The transaction is automatically rolled back when the test ends
// This ensures test isolation without needing cleanup
func SetupTestTransaction(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	db := SetupTestDB(t)

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		db.Close()
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	// Ensure transaction is rolled back when test ends
	t.Cleanup(func() {
		tx.Rollback()
		db.Close()
	})

	return db, tx
}

// createPluginTables creates the plugin tables the service operates on. The
// shapes mirror what the WordPress plugin migration creates, trimmed to the
// columns the service touches.
func createPluginTables(t *testing.T, db *sql.DB) {
	t.Helper()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS wp_users (
			id BIGSERIAL PRIMARY KEY,
			user_login TEXT NOT NULL UNIQUE,
			user_pass TEXT NOT NULL DEFAULT '',
			user_email TEXT NOT NULL DEFAULT '',
			display_name TEXT NOT NULL DEFAULT '',
			user_registered TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS wp_usermeta (
			umeta_id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			meta_key TEXT NOT NULL,
			meta_value TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS wp_kc_patient_details (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			mobile_number TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS wp_kc_appointments (
			id BIGSERIAL PRIMARY KEY,
			appointment_start_date DATE NOT NULL,
			appointment_start_time TIME NOT NULL,
			appointment_end_date DATE NOT NULL,
			appointment_end_time TIME NOT NULL,
			clinic_id BIGINT NOT NULL DEFAULT 1,
			doctor_id BIGINT NOT NULL,
			patient_id BIGINT NOT NULL,
			status INT NOT NULL DEFAULT 1,
			description TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to create plugin table: %v", err)
		}
	}
}

// CleanupTestDB truncates the plugin tables between tests
// Use this if you're not using transactions
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{"wp_kc_appointments", "wp_kc_patient_details", "wp_usermeta", "wp_users"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
			t.Logf("Warning: Failed to clean up %s: %v", table, err)
		}
	}
}

// CreateTestDoctor inserts a doctor account with the plugin capability marker
// and optional basic_data profile JSON. Returns the account ID.
func CreateTestDoctor(t *testing.T, db *sql.DB, name, basicData string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO wp_users (user_login, user_pass, user_email, display_name, user_registered)
		VALUES ($1, '', $1 || '@clinic.test', $2, NOW())
		RETURNING id
	`, fmt.Sprintf("doctor_%d", time.Now().UnixNano()), name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test doctor: %v", err)
	}

	meta := [][2]string{
		{"wp_capabilities", `a:1:{s:15:"kiviCare_doctor";b:1;}`},
	}
	if basicData != "" {
		meta = append(meta, [2]string{"basic_data", basicData})
	}
	for _, kv := range meta {
		if _, err := db.Exec(
			`INSERT INTO wp_usermeta (user_id, meta_key, meta_value) VALUES ($1, $2, $3)`,
			id, kv[0], kv[1],
		); err != nil {
			t.Fatalf("Failed to create doctor meta: %v", err)
		}
	}

	return id
}

// CreateTestPatient inserts a patient account plus its detail row, linked the
// way the plugin links them. Returns account ID and detail ID.
func CreateTestPatient(t *testing.T, db *sql.DB, login, name, phone string) (userID, detailID int64) {
	t.Helper()

	err := db.QueryRow(`
		INSERT INTO wp_users (user_login, user_pass, user_email, display_name, user_registered)
		VALUES ($1, '', $1 || '@example.com', $2, NOW())
		RETURNING id
	`, login, name).Scan(&userID)
	if err != nil {
		t.Fatalf("Failed to create test patient: %v", err)
	}

	err = db.QueryRow(`
		INSERT INTO wp_kc_patient_details (user_id, mobile_number)
		VALUES ($1, $2)
		RETURNING id
	`, userID, phone).Scan(&detailID)
	if err != nil {
		t.Fatalf("Failed to create test patient details: %v", err)
	}

	return userID, detailID
}
