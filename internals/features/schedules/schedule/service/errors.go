package service

import "errors"

// Outcome domain dari engine jadwal. Controller yang memetakan ke status HTTP
// + error_code; di lapisan ini cukup sentinel.
var (
	ErrInvalidSession   = errors.New("sesi tidak valid")
	ErrScheduleNotFound = errors.New("jadwal tidak ditemukan")
	ErrSessionNotFound  = errors.New("sesi tidak ditemukan")
	ErrAlreadySignedUp  = errors.New("tutor sudah terdaftar di sesi ini")
	ErrCapacityExceeded = errors.New("kapasitas sesi sudah penuh")
	ErrAlreadyCheckedIn = errors.New("tutor sudah check-in untuk sesi ini hari ini")
)
