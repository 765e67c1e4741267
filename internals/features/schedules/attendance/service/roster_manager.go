package service

import (
	"time"

	scheduleService "mytutor_backend/internals/features/schedules/schedule/service"
)

// RosterManager urus keanggotaan roster dan check-in tutor di atas
// ScheduleStore. Semua cek kapasitas/duplikat dijamin atomik oleh store;
// lapisan ini merangkai aturan domainnya.
type RosterManager struct {
	Store scheduleService.ScheduleStore
}

func NewRosterManager(store scheduleService.ScheduleStore) *RosterManager {
	return &RosterManager{Store: store}
}

// SignUp daftarkan tutor ke sesi. Langsung persist, tidak menunggu
// reconcile jadwal. Sesi penuh => ErrCapacityExceeded, sudah terdaftar
// => ErrAlreadySignedUp.
func (m *RosterManager) SignUp(sessionID int64, studentNumber string) error {
	return m.Store.SignUpTutor(sessionID, studentNumber)
}

// Leave keluarkan tutor dari roster. Tutor yang tidak terdaftar tetap
// dilaporkan sukses. Sudah pernah check-in tidak menghalangi keluar.
func (m *RosterManager) Leave(sessionID int64, studentNumber string) error {
	return m.Store.RemoveTutor(sessionID, studentNumber)
}

// CheckIn catat kehadiran tutor untuk tanggal `now`. Sekali per
// (sesi, tutor, tanggal); duplikat => ErrAlreadyCheckedIn. Jendela
// [selesai, selesai+15mnt] TIDAK dipaksakan di sini, itu urusan tampilan.
func (m *RosterManager) CheckIn(sessionID int64, studentNumber string, now time.Time) error {
	return m.Store.RecordCheckIn(sessionID, studentNumber, now)
}

// HasCheckedIn cek apakah tutor sudah check-in di tanggal tersebut.
func (m *RosterManager) HasCheckedIn(sessionID int64, studentNumber string, date time.Time) (bool, error) {
	return m.Store.HasCheckedIn(sessionID, studentNumber, date)
}

// WindowOpen true kalau `now` masuk jendela check-in sesi. Murni
// informasi untuk UI.
func (m *RosterManager) WindowOpen(sessionID int64, now time.Time) (bool, error) {
	sess, err := m.Store.GetSession(sessionID)
	if err != nil {
		return false, err
	}
	return scheduleService.CheckInWindow(sess, now), nil
}
