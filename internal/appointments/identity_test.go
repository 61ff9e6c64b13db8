package appointments

import "testing"

func strPtr(s string) *string { return &s }

func TestReconstructIdentity_LinkedAccount(t *testing.T) {
	row := AdminRow{
		Description:  "Запись через Telegram Бот. Пациент: Иван Петров, Тел: +79001112233",
		DetailFound:  true,
		DetailPhone:  strPtr("+79005556677"),
		AccountName:  strPtr("Анна Смирнова"),
		AccountLogin: strPtr("tg_patient_123456"),
	}

	id := ReconstructIdentity(row)

	// account data wins over the description parse
	if id.Name != "Анна Смирнова" {
		t.Errorf("Expected account name, got %q", id.Name)
	}
	if id.Phone != "+79005556677" {
		t.Errorf("Expected detail phone, got %q", id.Phone)
	}
	if id.TelegramID != "123456" {
		t.Errorf("Expected telegram id '123456', got %q", id.TelegramID)
	}
	if id.Source != "bot" {
		t.Errorf("Expected source 'bot', got %q", id.Source)
	}
}

func TestReconstructIdentity_DescriptionFallback(t *testing.T) {
	row := AdminRow{
		Description: "Запись через Telegram Бот. Пациент: Иван Петров, Тел: +79001112233",
	}

	id := ReconstructIdentity(row)

	if id.Name != "Иван Петров" {
		t.Errorf("Expected parsed name, got %q", id.Name)
	}
	if id.Phone != "+79001112233" {
		t.Errorf("Expected parsed phone, got %q", id.Phone)
	}
	if id.TelegramID != "" {
		t.Errorf("Expected no telegram id, got %q", id.TelegramID)
	}
	if id.Source != "bot" {
		t.Errorf("Expected source 'bot', got %q", id.Source)
	}
}

func TestReconstructIdentity_PartialCascade(t *testing.T) {
	// account gives a name but no phone; the description fills the phone
	row := AdminRow{
		Description:  "Запись через Telegram Бот. Пациент: Иван Петров, Тел: +79001112233",
		DetailFound:  true,
		AccountName:  strPtr("Анна Смирнова"),
		AccountLogin: strPtr("site_user_9"),
	}

	id := ReconstructIdentity(row)

	if id.Name != "Анна Смирнова" {
		t.Errorf("Expected account name, got %q", id.Name)
	}
	if id.Phone != "+79001112233" {
		t.Errorf("Expected parsed phone, got %q", id.Phone)
	}
	if id.TelegramID != "" {
		t.Errorf("Expected no telegram id for a site login, got %q", id.TelegramID)
	}
}

func TestReconstructIdentity_SiteBooking(t *testing.T) {
	row := AdminRow{
		Description:  "Created from front site",
		DetailFound:  true,
		DetailPhone:  strPtr("+31612345678"),
		AccountName:  strPtr("Jan de Vries"),
		AccountLogin: strPtr("jan.devries"),
	}

	id := ReconstructIdentity(row)

	if id.Source != "site" {
		t.Errorf("Expected source 'site', got %q", id.Source)
	}
	if id.Name != "Jan de Vries" || id.Phone != "+31612345678" {
		t.Errorf("Unexpected identity: %+v", id)
	}
}

func TestReconstructIdentity_NothingKnown(t *testing.T) {
	id := ReconstructIdentity(AdminRow{Description: "walk-in"})

	if id.Name != "Неизвестно" {
		t.Errorf("Expected fallback name, got %q", id.Name)
	}
	if id.Phone != "Нет телефона" {
		t.Errorf("Expected fallback phone, got %q", id.Phone)
	}
	if id.Source != "site" {
		t.Errorf("Expected source 'site', got %q", id.Source)
	}
}

func TestStatusLabel(t *testing.T) {
	testCases := []struct {
		code int
		want string
	}{
		{StatusConfirmed, "confirmed"},
		{StatusVisited, "visited"},
		{StatusNoShow, "noshow"},
		{2, "pending"},
		{99, "pending"},
	}
	for _, tc := range testCases {
		if got := StatusLabel(tc.code); got != tc.want {
			t.Errorf("StatusLabel(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
