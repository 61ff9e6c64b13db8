package appointments

import "errors"

var (
	ErrMissingDoctorOrDate = errors.New("doctor id and date are required")
	ErrMissingFields       = errors.New("doctor id, date, time and patient name are required")
	ErrMissingAppointment  = errors.New("appointment id is required")
	ErrMissingTelegramID   = errors.New("telegram id is required")
	ErrBadDateTime         = errors.New("invalid appointment date or time")
)
