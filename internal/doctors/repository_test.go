package doctors

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// TestRepository_List tests the capability filter args and row scanning
func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewRepository(db, "wp_")

	rows := sqlmock.NewRows([]string{"id", "display_name", "basic_data", "description"}).
		AddRow(1, "Иван Петров", `{"specialties":[{"label":"Кардиолог"}]}`, "Прием по будням").
		AddRow(2, "Мария Козлова", nil, nil)

	mock.ExpectQuery("FROM wp_users u").
		WithArgs("wp_capabilities", DoctorCapability).
		WillReturnRows(rows)

	result, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(result))
	}

	if result[0].BasicData == nil {
		t.Error("Expected profile blob for first doctor")
	}
	if result[1].BasicData != nil || result[1].Description != nil {
		t.Errorf("Expected nil meta for second doctor, got %+v", result[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
