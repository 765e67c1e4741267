package service

import (
	"errors"
	"testing"
	"time"
)

func TestValidateSession(t *testing.T) {
	base := Session{Day: "Monday", Start: 10, End: 12, Location: "Lab A", Capacity: 3}

	tests := []struct {
		name    string
		mutate  func(*Session)
		wantErr bool
	}{
		{"valid", func(s *Session) {}, false},
		{"valid setengah jam", func(s *Session) { s.Start = 14.5; s.End = 16.5 }, false},
		{"hari weekend", func(s *Session) { s.Day = "Saturday" }, true},
		{"hari ngawur", func(s *Session) { s.Day = "Mon" }, true},
		{"selesai sebelum mulai", func(s *Session) { s.Start = 12; s.End = 10 }, true},
		{"selesai sama dengan mulai", func(s *Session) { s.End = s.Start }, true},
		{"bukan kelipatan 30 menit", func(s *Session) { s.Start = 10.25 }, true},
		{"mulai terlalu pagi", func(s *Session) { s.Start = 7.5; s.End = 9 }, true},
		{"selesai terlalu malam", func(s *Session) { s.Start = 19; s.End = 20.5 }, true},
		{"batas bawah pas", func(s *Session) { s.Start = 8; s.End = 9 }, false},
		{"batas atas pas", func(s *Session) { s.Start = 19; s.End = 20 }, false},
		{"kapasitas nol", func(s *Session) { s.Capacity = 0 }, true},
		{"kapasitas negatif", func(s *Session) { s.Capacity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			err := ValidateSession(s)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSession) {
					t.Fatalf("mau ErrInvalidSession, dapat %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("sesi valid ditolak: %v", err)
			}
		})
	}
}

func TestAvailableSlotsNeverNegative(t *testing.T) {
	s := Session{Capacity: 2, Roster: []string{"ABCDEF001", "ABCDEF002", "ABCDEF003"}}
	if got := s.AvailableSlots(); got != 0 {
		t.Fatalf("slot tersisa = %d, mau 0 (tidak boleh negatif)", got)
	}
	if !s.IsAtCapacity() {
		t.Fatal("roster melebihi kapasitas harus dianggap penuh")
	}

	s = Session{Capacity: 5, Roster: []string{"ABCDEF001"}}
	if got := s.AvailableSlots(); got != 4 {
		t.Fatalf("slot tersisa = %d, mau 4", got)
	}
}

func TestCheckInWindow(t *testing.T) {
	// Senin 2026-08-24, sesi Senin selesai 12:00
	s := Session{Day: "Monday", Start: 10, End: 12, Capacity: 1}

	at := func(hour, min int) time.Time {
		return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"tepat jam selesai", at(12, 0), true},
		{"dalam 15 menit", at(12, 10), true},
		{"tepat batas 15 menit", at(12, 15), true},
		{"lewat jendela", at(12, 16), false},
		{"sebelum selesai", at(11, 59), false},
		{"hari salah", time.Date(2026, 8, 25, 12, 5, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckInWindow(s, tt.now); got != tt.want {
				t.Fatalf("CheckInWindow(%v) = %v, mau %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestFormatHour(t *testing.T) {
	if got := FormatHour(8); got != "08:00" {
		t.Fatalf("FormatHour(8) = %q", got)
	}
	if got := FormatHour(14.5); got != "14:30" {
		t.Fatalf("FormatHour(14.5) = %q", got)
	}
}
