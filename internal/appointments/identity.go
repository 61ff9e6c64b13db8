package appointments

import (
	"regexp"
	"strings"

	"github.com/stastashpulatov/clinic-bot/internal/patients"
)

// Bookings created by this service embed the patient identity in the
// description so that admin tooling can recover it even when the account
// linkage is broken. These literals must match what Create writes.
const (
	botDescriptionMarker = "Запись через Telegram Бот"
	botSourceMarker      = "Telegram Бот"

	fallbackPatientName  = "Неизвестно"
	fallbackPatientPhone = "Нет телефона"
)

var descriptionPattern = regexp.MustCompile(`Пациент: (.*?), Тел: (.*)`)

// Identity is the reconstructed patient identity of one appointment row.
type Identity struct {
	Name       string
	Phone      string
	TelegramID string // "" when not recovered
	Source     string // "bot" or "site"
}

// ReconstructIdentity recovers the patient's name, phone and origin from an
// admin join row. The data sources are inconsistent, so the lookup cascades:
// the linked account, then the patient-detail phone column, then the
// free-text description written at booking time, then literal fallbacks.
// Pure; no store access.
func ReconstructIdentity(row AdminRow) Identity {
	id := Identity{
		Name:  fallbackPatientName,
		Phone: fallbackPatientPhone,
	}

	if row.DetailFound {
		if row.AccountName != nil && *row.AccountName != "" {
			id.Name = *row.AccountName
		}
		if row.AccountLogin != nil && strings.HasPrefix(*row.AccountLogin, patients.TelegramLoginPrefix) {
			id.TelegramID = strings.TrimPrefix(*row.AccountLogin, patients.TelegramLoginPrefix)
		}
		if row.DetailPhone != nil && *row.DetailPhone != "" {
			id.Phone = *row.DetailPhone
		}
	}

	if strings.Contains(row.Description, botDescriptionMarker) {
		if m := descriptionPattern.FindStringSubmatch(row.Description); m != nil {
			if id.Name == fallbackPatientName {
				id.Name = m[1]
			}
			if id.Phone == fallbackPatientPhone {
				id.Phone = m[2]
			}
		}
	}

	id.Source = "site"
	if id.TelegramID != "" || strings.Contains(row.Description, botSourceMarker) {
		id.Source = "bot"
	}

	return id
}
