package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	scheduleService "mytutor_backend/internals/features/schedules/schedule/service"
)

// fakeStore: ScheduleStore in-memory untuk unit test manager. Mutex
// memainkan peran row lock FOR UPDATE di store GORM: cek kapasitas dan
// penambahan roster jalan sebagai satu langkah atomik.
type fakeStore struct {
	mu       sync.Mutex
	sessions map[int64]scheduleService.Session
	checkins map[string]bool // key: sesi|sn|tanggal
}

func newFakeStore(sessions ...scheduleService.Session) *fakeStore {
	fs := &fakeStore{
		sessions: map[int64]scheduleService.Session{},
		checkins: map[string]bool{},
	}
	for _, s := range sessions {
		fs.sessions[s.ID] = s
	}
	return fs
}

func checkinKey(sessionID int64, sn string, date time.Time) string {
	return fmt.Sprintf("%d|%s|%s", sessionID, sn, date.Format("2006-01-02"))
}

func (f *fakeStore) LoadSchedule(courseCode string, year int) (scheduleService.Schedule, error) {
	return scheduleService.Schedule{CourseCode: courseCode, Year: year}, nil
}

func (f *fakeStore) SaveScheduleDiff(scheduleID int64, diff scheduleService.ScheduleDiff) error {
	return nil
}

func (f *fakeStore) GetSession(sessionID int64) (scheduleService.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return scheduleService.Session{}, scheduleService.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeStore) SignUpTutor(sessionID int64, sn string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return scheduleService.ErrSessionNotFound
	}
	if s.HasTutor(sn) {
		return scheduleService.ErrAlreadySignedUp
	}
	if s.IsAtCapacity() {
		return scheduleService.ErrCapacityExceeded
	}
	s.Roster = append(s.Roster, sn)
	f.sessions[sessionID] = s
	return nil
}

func (f *fakeStore) RemoveTutor(sessionID int64, sn string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return nil
	}
	roster := make([]string, 0, len(s.Roster))
	for _, r := range s.Roster {
		if r != sn {
			roster = append(roster, r)
		}
	}
	s.Roster = roster
	f.sessions[sessionID] = s
	return nil
}

func (f *fakeStore) RecordCheckIn(sessionID int64, sn string, date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.sessions[sessionID]; !ok {
		return scheduleService.ErrSessionNotFound
	}
	key := checkinKey(sessionID, sn, date)
	if f.checkins[key] {
		return scheduleService.ErrAlreadyCheckedIn
	}
	f.checkins[key] = true
	return nil
}

func (f *fakeStore) HasCheckedIn(sessionID int64, sn string, date time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.checkins[checkinKey(sessionID, sn, date)], nil
}

func (f *fakeStore) SessionAttendanceCount(sessionID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for key, ok := range f.checkins {
		if ok && len(key) > 0 {
			var id int64
			fmt.Sscanf(key, "%d|", &id)
			if id == sessionID {
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeStore) CourseAttendanceCount(courseCode string) (int64, error) { return 0, nil }

func (f *fakeStore) TutorAttendanceCount(courseCode, sn string) (int64, error) { return 0, nil }

func (f *fakeStore) DeleteCourseData(courseCode string) error { return nil }

func TestSignUpCapacity(t *testing.T) {
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 11, Capacity: 1})
	m := NewRosterManager(store)

	if err := m.SignUp(1, "ABCDEF001"); err != nil {
		t.Fatalf("sign up pertama gagal: %v", err)
	}
	if err := m.SignUp(1, "ABCDEF002"); !errors.Is(err, scheduleService.ErrCapacityExceeded) {
		t.Fatalf("sesi penuh harus ErrCapacityExceeded, dapat %v", err)
	}
}

func TestConcurrentSignUpLastSlot(t *testing.T) {
	// dua tutor rebutan slot terakhir: tepat satu sukses, satu
	// ErrCapacityExceeded
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 11, Capacity: 1})
	m := NewRosterManager(store)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, sn := range []string{"ABCDEF001", "ABCDEF002"} {
		wg.Add(1)
		go func(sn string) {
			defer wg.Done()
			results <- m.SignUp(1, sn)
		}(sn)
	}
	wg.Wait()
	close(results)

	var succeeded, full int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, scheduleService.ErrCapacityExceeded):
			full++
		default:
			t.Fatalf("error tak terduga: %v", err)
		}
	}
	if succeeded != 1 || full != 1 {
		t.Fatalf("mau 1 sukses + 1 penuh, dapat sukses=%d penuh=%d", succeeded, full)
	}
}

func TestSignUpDuplicate(t *testing.T) {
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 11, Capacity: 5})
	m := NewRosterManager(store)

	if err := m.SignUp(1, "ABCDEF001"); err != nil {
		t.Fatalf("sign up pertama gagal: %v", err)
	}
	if err := m.SignUp(1, "ABCDEF001"); !errors.Is(err, scheduleService.ErrAlreadySignedUp) {
		t.Fatalf("duplikat harus ErrAlreadySignedUp, dapat %v", err)
	}
}

func TestSignUpSessionNotFound(t *testing.T) {
	m := NewRosterManager(newFakeStore())
	if err := m.SignUp(99, "ABCDEF001"); !errors.Is(err, scheduleService.ErrSessionNotFound) {
		t.Fatalf("mau ErrSessionNotFound, dapat %v", err)
	}
}

func TestLeaveAbsentStillSucceeds(t *testing.T) {
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 11, Capacity: 2})
	m := NewRosterManager(store)

	if err := m.Leave(1, "ABCDEF001"); err != nil {
		t.Fatalf("leave tanpa terdaftar harus sukses, dapat %v", err)
	}
}

func TestLeaveFreesSlot(t *testing.T) {
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 11, Capacity: 1})
	m := NewRosterManager(store)

	if err := m.SignUp(1, "ABCDEF001"); err != nil {
		t.Fatal(err)
	}
	if err := m.Leave(1, "ABCDEF001"); err != nil {
		t.Fatal(err)
	}
	if err := m.SignUp(1, "ABCDEF002"); err != nil {
		t.Fatalf("slot harus kosong lagi setelah leave: %v", err)
	}
}

func TestCheckInTwiceSameDay(t *testing.T) {
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 12, Capacity: 2})
	m := NewRosterManager(store)

	day := time.Date(2026, 8, 24, 12, 5, 0, 0, time.UTC)
	if err := m.CheckIn(1, "ABCDEF001", day); err != nil {
		t.Fatalf("check-in pertama gagal: %v", err)
	}
	if err := m.CheckIn(1, "ABCDEF001", day.Add(3*time.Minute)); !errors.Is(err, scheduleService.ErrAlreadyCheckedIn) {
		t.Fatalf("check-in kedua harus ErrAlreadyCheckedIn, dapat %v", err)
	}

	// hari berikutnya boleh lagi
	if err := m.CheckIn(1, "ABCDEF001", day.AddDate(0, 0, 7)); err != nil {
		t.Fatalf("check-in minggu berikutnya gagal: %v", err)
	}
}

func TestCheckInOutsideWindowStillRecorded(t *testing.T) {
	// jendela [selesai, selesai+15mnt] cuma informasi UI, bukan penjaga
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 12, Capacity: 2})
	m := NewRosterManager(store)

	outside := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC) // Rabu pagi
	if err := m.CheckIn(1, "ABCDEF001", outside); err != nil {
		t.Fatalf("check-in di luar jendela harus tetap tercatat: %v", err)
	}

	open, err := m.WindowOpen(1, outside)
	if err != nil {
		t.Fatal(err)
	}
	if open {
		t.Fatal("jendela harus tertutup di Rabu pagi")
	}

	inWindow := time.Date(2026, 8, 24, 12, 10, 0, 0, time.UTC) // Senin 12:10
	open, err = m.WindowOpen(1, inWindow)
	if err != nil {
		t.Fatal(err)
	}
	if !open {
		t.Fatal("jendela harus terbuka Senin 12:10")
	}
}

func TestHasCheckedIn(t *testing.T) {
	store := newFakeStore(scheduleService.Session{ID: 1, Day: "Monday", Start: 10, End: 12, Capacity: 2})
	m := NewRosterManager(store)

	day := time.Date(2026, 8, 24, 12, 5, 0, 0, time.UTC)
	ok, err := m.HasCheckedIn(1, "ABCDEF001", day)
	if err != nil || ok {
		t.Fatalf("belum check-in: ok=%v err=%v", ok, err)
	}

	if err := m.CheckIn(1, "ABCDEF001", day); err != nil {
		t.Fatal(err)
	}
	ok, err = m.HasCheckedIn(1, "ABCDEF001", day)
	if err != nil || !ok {
		t.Fatalf("sudah check-in: ok=%v err=%v", ok, err)
	}
}
