package appointments

import (
	"encoding/json"
	"net/http"

	"github.com/stastashpulatov/clinic-bot/internal/pagination"
	"github.com/stastashpulatov/clinic-bot/internal/params"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetAppointments handles GET /get-appointments: booked slots for a
// doctor/date pair held by the bot while building its keyboard.
func (h *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	p := params.Parse(r)

	doctorID, ok := p.Int("doctor_id")
	date := p.Get("date")
	if !ok || doctorID == 0 || date == "" {
		respondError(w, http.StatusBadRequest, "missing_params", "Doctor ID and Date required")
		return
	}

	slots, err := h.service.BookedSlots(r.Context(), int64(doctorID), date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, slots)
}

// AvailableSlots handles GET /available-slots: free times of the day.
func (h *Handler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	p := params.Parse(r)

	doctorID, ok := p.Int("doctor_id")
	date := p.Get("date")
	if !ok || doctorID == 0 || date == "" {
		respondError(w, http.StatusBadRequest, "missing_params", "Doctor ID and Date required")
		return
	}

	free, err := h.service.AvailableSlots(r.Context(), int64(doctorID), date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if free == nil {
		free = []string{}
	}

	respondJSON(w, http.StatusOK, free)
}

// Create handles POST /appointments.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	p := params.Parse(r)

	doctorID, ok := p.Int("doctor_id")
	req := CreateRequest{
		DoctorID:     int64(doctorID),
		Date:         p.Get("appointment_date"),
		Time:         p.Get("appointment_time"),
		PatientName:  p.Get("user_name"),
		PatientPhone: p.Get("user_phone"),
		TelegramID:   p.Get("telegram_id"),
	}
	if !ok || req.DoctorID == 0 || req.Date == "" || req.Time == "" || req.PatientName == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "Required fields missing")
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch err {
		case ErrBadDateTime:
			respondError(w, http.StatusBadRequest, "invalid_datetime", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"id":         result.AppointmentID,
		"message":    "Appointment created",
		"patient_id": result.PatientID,
	})
}

// Cancel handles POST /cancel-appointment.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	p := params.Parse(r)

	appointmentID, ok := p.Int("appointment_id")
	if !ok || appointmentID == 0 {
		respondError(w, http.StatusBadRequest, "missing_id", "Appointment ID required")
		return
	}

	if err := h.service.Cancel(r.Context(), int64(appointmentID)); err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Appointment cancelled",
	})
}

// UpdateStatus handles POST /update-status. Any integer is persisted
// verbatim, including values outside the known enumeration.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	p := params.Parse(r)

	appointmentID, idOK := p.Int("appointment_id")
	status, statusOK := p.Int("status")
	if !idOK || appointmentID == 0 || !statusOK {
		respondError(w, http.StatusBadRequest, "missing_params", "ID and Status required")
		return
	}

	if err := h.service.UpdateStatus(r.Context(), int64(appointmentID), status); err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"id":         appointmentID,
		"new_status": status,
	})
}

// MyAppointments handles GET /my-appointments.
func (h *Handler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	p := params.Parse(r)

	telegramID := p.Get("telegram_id")
	if telegramID == "" {
		respondError(w, http.StatusBadRequest, "missing_id", "Telegram ID required")
		return
	}

	list, err := h.service.PatientAppointments(r.Context(), telegramID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if list == nil {
		list = []PatientAppointment{}
	}

	respondJSON(w, http.StatusOK, list)
}

// AllAppointments handles GET /all-appointments (admin view).
func (h *Handler) AllAppointments(w http.ResponseWriter, r *http.Request) {
	p := params.Parse(r)

	limit := pagination.ParseLimit(p.Get("limit"))

	list, err := h.service.Upcoming(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if list == nil {
		list = []AdminAppointment{}
	}

	respondJSON(w, http.StatusOK, list)
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
