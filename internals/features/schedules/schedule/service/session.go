package service

import (
	"fmt"
	"math"
	"time"
)

// Hari kerja yang valid untuk sesi tutoring.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Batas jam operasional (pecahan jam, 14.5 = 14:30).
const (
	DayStartHour = 8.0
	DayEndHour   = 20.0
)

// Session adalah bentuk domain sebuah sesi tutoring mingguan.
// ID == 0 berarti sesi baru yang belum disimpan (pending create).
type Session struct {
	ID           int64
	ScheduleID   int64
	Day          string
	Start        float64
	End          float64
	Location     string
	WhatsappLink string
	Capacity     int
	Roster       []string // student number tutor yang sudah sign up
}

// Schedule adalah satu jadwal course per tahun beserta sesi-sesinya.
type Schedule struct {
	ID         int64
	CourseCode string
	Year       int
	Sessions   []Session
}

// ValidateSession cek aturan boundary sebelum sesi masuk engine:
// hari kerja valid, end > start, kelipatan setengah jam, dalam jam
// operasional, kapasitas positif. Error selalu membungkus ErrInvalidSession.
func ValidateSession(s Session) error {
	if !isWeekday(s.Day) {
		return fmt.Errorf("%w: hari %q bukan hari kerja", ErrInvalidSession, s.Day)
	}
	if s.End <= s.Start {
		return fmt.Errorf("%w: jam selesai harus setelah jam mulai", ErrInvalidSession)
	}
	if !isHalfHour(s.Start) || !isHalfHour(s.End) {
		return fmt.Errorf("%w: jam harus kelipatan 30 menit", ErrInvalidSession)
	}
	if s.Start < DayStartHour {
		return fmt.Errorf("%w: jam mulai sebelum %02.0f:00", ErrInvalidSession, DayStartHour)
	}
	if s.End > DayEndHour {
		return fmt.Errorf("%w: jam selesai melewati %02.0f:00", ErrInvalidSession, DayEndHour)
	}
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: kapasitas harus lebih dari 0", ErrInvalidSession)
	}
	return nil
}

// IsAtCapacity true kalau roster sudah mencapai kapasitas.
func (s Session) IsAtCapacity() bool {
	return len(s.Roster) >= s.Capacity
}

// AvailableSlots sisa slot, tidak pernah negatif walau roster overshoot.
func (s Session) AvailableSlots() int {
	if n := s.Capacity - len(s.Roster); n > 0 {
		return n
	}
	return 0
}

// HasTutor cek apakah student number ada di roster.
func (s Session) HasTutor(studentNumber string) bool {
	for _, sn := range s.Roster {
		if sn == studentNumber {
			return true
		}
	}
	return false
}

// FormatHour ubah pecahan jam jadi label "HH:MM".
func FormatHour(h float64) string {
	hh := int(math.Floor(h))
	mm := int(math.Round((h - math.Floor(h)) * 60))
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// CheckInWindow true kalau `now` jatuh di hari sesi dan di rentang
// [end, end+15 menit]. Murni untuk presentasi: operasi check-in sendiri
// tidak pernah menolak di luar jendela ini.
func CheckInWindow(s Session, now time.Time) bool {
	if now.Weekday().String() != s.Day {
		return false
	}
	nowHour := float64(now.Hour()) + float64(now.Minute())/60.0
	return nowHour >= s.End && nowHour <= s.End+0.25
}

func isWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func isHalfHour(h float64) bool {
	frac := h - math.Floor(h)
	return frac == 0 || frac == 0.5
}
