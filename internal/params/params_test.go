package params

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestParse_Query(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/get-appointments?doctor_id=12&date=2024-06-10", nil)

	v := Parse(req)

	if v.Get("doctor_id") != "12" {
		t.Errorf("Expected doctor_id '12', got %q", v.Get("doctor_id"))
	}
	if v.Get("date") != "2024-06-10" {
		t.Errorf("Expected date '2024-06-10', got %q", v.Get("date"))
	}
	if v.Has("limit") {
		t.Error("limit should be absent")
	}
}

func TestParse_JSONBody(t *testing.T) {
	body := `{"doctor_id": 5, "appointment_date": "2024-06-10", "telegram_id": 987654321, "user_phone": null}`
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	v := Parse(req)

	if v.Get("doctor_id") != "5" {
		t.Errorf("Expected doctor_id '5', got %q", v.Get("doctor_id"))
	}
	// large ints must not be mangled into scientific notation
	if v.Get("telegram_id") != "987654321" {
		t.Errorf("Expected telegram_id '987654321', got %q", v.Get("telegram_id"))
	}
	if v.Has("user_phone") {
		t.Error("null JSON field should count as absent")
	}
}

func TestParse_FormBody(t *testing.T) {
	form := url.Values{}
	form.Set("appointment_id", "44")
	form.Set("status", "4")

	req := httptest.NewRequest(http.MethodPost, "/update-status", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	v := Parse(req)

	if v.Get("appointment_id") != "44" {
		t.Errorf("Expected appointment_id '44', got %q", v.Get("appointment_id"))
	}
	if n, ok := v.Int("status"); !ok || n != 4 {
		t.Errorf("Expected status 4, got %d (ok=%v)", n, ok)
	}
}

func TestParse_JSONOverridesQuery(t *testing.T) {
	body := `{"appointment_id": "7"}`
	req := httptest.NewRequest(http.MethodPost, "/cancel-appointment?appointment_id=3", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	v := Parse(req)

	if v.Get("appointment_id") != "7" {
		t.Errorf("Expected JSON body to win, got %q", v.Get("appointment_id"))
	}
}

func TestInt_Invalid(t *testing.T) {
	v := Values{"status": "abc"}
	if _, ok := v.Int("status"); ok {
		t.Error("Expected non-numeric value to fail Int parsing")
	}
	if _, ok := v.Int("missing"); ok {
		t.Error("Expected missing value to fail Int parsing")
	}
}
