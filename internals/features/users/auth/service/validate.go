package service

import "regexp"

// Pola pendaftaran mengikuti aturan kampus: email bebas domain,
// student number 6 huruf + 3 angka (mis. "ABCDEF001").
var (
	emailPattern         = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	studentNumberPattern = regexp.MustCompile(`^[A-Za-z]{6}\d{3}$`)
)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidStudentNumber(sn string) bool {
	return studentNumberPattern.MatchString(sn)
}
