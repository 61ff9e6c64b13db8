package patients

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

// TestRepository_FindIDByLogin tests lookup hit and miss
func TestRepository_FindIDByLogin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewRepository(db, "wp_")

	mock.ExpectQuery("SELECT id FROM wp_users WHERE user_login").
		WithArgs("tg_patient_555001").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	id, found, err := repo.FindIDByLogin(context.Background(), "tg_patient_555001")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !found || id != 12 {
		t.Errorf("Expected account 12 found, got id=%d found=%v", id, found)
	}

	// A missing account is not an error
	mock.ExpectQuery("SELECT id FROM wp_users WHERE user_login").
		WithArgs("tg_patient_999999").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, found, err = repo.FindIDByLogin(context.Background(), "tg_patient_999999")
	if err != nil {
		t.Fatalf("Expected no error for missing account, got: %v", err)
	}
	if found {
		t.Error("Expected account to not be found")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

// TestRepository_CreateAccount_LoginTaken tests the unique-violation mapping
func TestRepository_CreateAccount_LoginTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewRepository(db, "wp_")

	mock.ExpectQuery("INSERT INTO wp_users").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.CreateAccount(context.Background(), Account{
		Login:       "tg_patient_555001",
		Password:    "secret",
		Email:       "tg_patient_555001@example.com",
		DisplayName: "Анна",
	})
	if !errors.Is(err, ErrLoginTaken) {
		t.Errorf("Expected ErrLoginTaken, got: %v", err)
	}
}

// TestRepository_CreateAccount_Success tests the happy path
func TestRepository_CreateAccount_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewRepository(db, "wp_")

	mock.ExpectQuery("INSERT INTO wp_users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(34))

	id, err := repo.CreateAccount(context.Background(), Account{
		Login:       "tg_patient_555001",
		Password:    "secret",
		Email:       "tg_patient_555001@example.com",
		DisplayName: "Анна",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if id != 34 {
		t.Errorf("Expected ID 34, got %d", id)
	}
}

// TestRepository_SetAttribute tests the meta insert
func TestRepository_SetAttribute(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewRepository(db, "wp_")

	mock.ExpectExec("INSERT INTO wp_usermeta").
		WithArgs(int64(34), "mobile_number", "+79001234567").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SetAttribute(context.Background(), 34, "mobile_number", "+79001234567"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
