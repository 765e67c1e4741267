package service

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "mytutor_backend/internals/features/schedules/attendance/model"
	scheduleModel "mytutor_backend/internals/features/schedules/schedule/model"
)

// ScheduleStore kontrak persistensi engine jadwal. Roster dan check-in
// lewat sini juga supaya cek kapasitas/duplikat bisa atomik di level store.
type ScheduleStore interface {
	LoadSchedule(courseCode string, year int) (Schedule, error)
	SaveScheduleDiff(scheduleID int64, diff ScheduleDiff) error
	GetSession(sessionID int64) (Session, error)

	SignUpTutor(sessionID int64, studentNumber string) error
	RemoveTutor(sessionID int64, studentNumber string) error

	RecordCheckIn(sessionID int64, studentNumber string, date time.Time) error
	HasCheckedIn(sessionID int64, studentNumber string, date time.Time) (bool, error)
	SessionAttendanceCount(sessionID int64) (int64, error)
	CourseAttendanceCount(courseCode string) (int64, error)
	TutorAttendanceCount(courseCode, studentNumber string) (int64, error)

	DeleteCourseData(courseCode string) error
}

type GormScheduleStore struct {
	DB *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) *GormScheduleStore {
	return &GormScheduleStore{DB: db}
}

// LoadSchedule ambil jadwal (course_code, year); baris jadwal dibuat
// otomatis kalau belum ada, sesi diurutkan by ID beserta roster-nya.
func (s *GormScheduleStore) LoadSchedule(courseCode string, year int) (Schedule, error) {
	var sched scheduleModel.ScheduleModel
	err := s.DB.
		Where(&scheduleModel.ScheduleModel{ScheduleCourseCode: courseCode, ScheduleYear: year}).
		FirstOrCreate(&sched).Error
	if err != nil {
		return Schedule{}, err
	}

	var rows []scheduleModel.TutoringSessionModel
	if err := s.DB.
		Where("tutoring_session_schedule_id = ?", sched.ScheduleID).
		Order("tutoring_session_id ASC").
		Find(&rows).Error; err != nil {
		return Schedule{}, err
	}

	sessions := make([]Session, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, sessionFromModel(r))
		ids = append(ids, r.TutoringSessionID)
	}

	if len(ids) > 0 {
		var tutors []scheduleModel.SessionTutorModel
		if err := s.DB.
			Where("session_tutor_session_id IN ?", ids).
			Order("session_tutor_id ASC").
			Find(&tutors).Error; err != nil {
			return Schedule{}, err
		}
		rosterBySession := make(map[int64][]string, len(ids))
		for _, t := range tutors {
			rosterBySession[t.SessionTutorSessionID] = append(rosterBySession[t.SessionTutorSessionID], t.SessionTutorStudentNumber)
		}
		for i := range sessions {
			sessions[i].Roster = rosterBySession[sessions[i].ID]
		}
	}

	return Schedule{
		ID:         sched.ScheduleID,
		CourseCode: sched.ScheduleCourseCode,
		Year:       sched.ScheduleYear,
		Sessions:   sessions,
	}, nil
}

// SaveScheduleDiff eksekusi rencana dalam SATU transaksi: create + update
// dulu, lalu delete + cascade roster. Gagal di tengah = rollback semua.
func (s *GormScheduleStore) SaveScheduleDiff(scheduleID int64, diff ScheduleDiff) error {
	if diff.IsEmpty() {
		return nil
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, c := range diff.Creates {
			row := sessionToModel(c)
			row.TutoringSessionID = 0
			row.TutoringSessionScheduleID = scheduleID
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, u := range diff.Updates {
			res := tx.Model(&scheduleModel.TutoringSessionModel{}).
				Where("tutoring_session_id = ? AND tutoring_session_schedule_id = ?", u.ID, scheduleID).
				Updates(map[string]any{
					"tutoring_session_day":           u.Day,
					"tutoring_session_start_time":    u.Start,
					"tutoring_session_end_time":      u.End,
					"tutoring_session_location":      u.Location,
					"tutoring_session_whatsapp_link": nilIfEmpty(u.WhatsappLink),
					"tutoring_session_capacity":      u.Capacity,
				})
			if res.Error != nil {
				return res.Error
			}
		}

		if len(diff.DeleteIDs) > 0 {
			// roster ikut terhapus; riwayat attendance dibiarkan
			if err := s.whereSessionIDs(tx, "session_tutor_session_id", diff.DeleteIDs).
				Delete(&scheduleModel.SessionTutorModel{}).Error; err != nil {
				return err
			}
			if err := s.whereSessionIDs(tx, "tutoring_session_id", diff.DeleteIDs).
				Where("tutoring_session_schedule_id = ?", scheduleID).
				Delete(&scheduleModel.TutoringSessionModel{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetSession ambil satu sesi + roster.
func (s *GormScheduleStore) GetSession(sessionID int64) (Session, error) {
	var row scheduleModel.TutoringSessionModel
	if err := s.DB.
		Where("tutoring_session_id = ?", sessionID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}

	sess := sessionFromModel(row)
	var tutors []scheduleModel.SessionTutorModel
	if err := s.DB.
		Where("session_tutor_session_id = ?", sessionID).
		Order("session_tutor_id ASC").
		Find(&tutors).Error; err != nil {
		return Session{}, err
	}
	for _, t := range tutors {
		sess.Roster = append(sess.Roster, t.SessionTutorStudentNumber)
	}
	return sess, nil
}

// SignUpTutor daftarkan tutor ke sesi. Cek kapasitas atomik: baris sesi
// dikunci FOR UPDATE, hitung roster, baru insert. Dua request paralel ke
// slot terakhir hanya meloloskan satu.
func (s *GormScheduleStore) SignUpTutor(sessionID int64, studentNumber string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var row scheduleModel.TutoringSessionModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tutoring_session_id = ?", sessionID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&scheduleModel.SessionTutorModel{}).
			Where("session_tutor_session_id = ? AND session_tutor_student_number = ?", sessionID, studentNumber).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadySignedUp
		}

		var count int64
		if err := tx.Model(&scheduleModel.SessionTutorModel{}).
			Where("session_tutor_session_id = ?", sessionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(row.TutoringSessionCapacity) {
			return ErrCapacityExceeded
		}

		return tx.Create(&scheduleModel.SessionTutorModel{
			SessionTutorSessionID:     sessionID,
			SessionTutorStudentNumber: studentNumber,
		}).Error
	})
}

// RemoveTutor keluarkan tutor dari roster. Tidak ada baris yang cocok
// tetap dianggap sukses.
func (s *GormScheduleStore) RemoveTutor(sessionID int64, studentNumber string) error {
	return s.DB.
		Where("session_tutor_session_id = ? AND session_tutor_student_number = ?", sessionID, studentNumber).
		Delete(&scheduleModel.SessionTutorModel{}).Error
}

// RecordCheckIn catat kehadiran sekali per (sesi, tutor, tanggal).
// Cek duplikat dan insert dalam satu transaksi.
func (s *GormScheduleStore) RecordCheckIn(sessionID int64, studentNumber string, date time.Time) error {
	day := dateOnly(date)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var row scheduleModel.TutoringSessionModel
		if err := tx.
			Where("tutoring_session_id = ?", sessionID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		var sched scheduleModel.ScheduleModel
		if err := tx.
			Where("schedule_id = ?", row.TutoringSessionScheduleID).
			First(&sched).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&attendanceModel.AttendanceModel{}).
			Where("attendance_session_id = ? AND attendance_student_number = ? AND attendance_date = ?",
				sessionID, studentNumber, day).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyCheckedIn
		}

		return tx.Create(&attendanceModel.AttendanceModel{
			AttendanceSessionID:     sessionID,
			AttendanceCourseCode:    sched.ScheduleCourseCode,
			AttendanceStudentNumber: studentNumber,
			AttendanceDate:          day,
		}).Error
	})
}

func (s *GormScheduleStore) HasCheckedIn(sessionID int64, studentNumber string, date time.Time) (bool, error) {
	var count int64
	err := s.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_session_id = ? AND attendance_student_number = ? AND attendance_date = ?",
			sessionID, studentNumber, dateOnly(date)).
		Count(&count).Error
	return count > 0, err
}

func (s *GormScheduleStore) SessionAttendanceCount(sessionID int64) (int64, error) {
	var count int64
	err := s.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

func (s *GormScheduleStore) CourseAttendanceCount(courseCode string) (int64, error) {
	var count int64
	err := s.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_course_code = ?", courseCode).
		Count(&count).Error
	return count, err
}

func (s *GormScheduleStore) TutorAttendanceCount(courseCode, studentNumber string) (int64, error) {
	var count int64
	err := s.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_course_code = ? AND attendance_student_number = ?", courseCode, studentNumber).
		Count(&count).Error
	return count, err
}

// DeleteCourseData hapus seluruh jejak jadwal sebuah course: roster,
// riwayat attendance, sesi, lalu baris jadwalnya. Dipakai saat course
// dihapus admin.
func (s *GormScheduleStore) DeleteCourseData(courseCode string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var scheduleIDs []int64
		if err := tx.Model(&scheduleModel.ScheduleModel{}).
			Where("schedule_course_code = ?", courseCode).
			Pluck("schedule_id", &scheduleIDs).Error; err != nil {
			return err
		}
		if len(scheduleIDs) == 0 {
			return nil
		}

		var sessionIDs []int64
		if err := tx.Model(&scheduleModel.TutoringSessionModel{}).
			Where("tutoring_session_schedule_id IN ?", scheduleIDs).
			Pluck("tutoring_session_id", &sessionIDs).Error; err != nil {
			return err
		}

		if len(sessionIDs) > 0 {
			if err := s.whereSessionIDs(tx, "session_tutor_session_id", sessionIDs).
				Delete(&scheduleModel.SessionTutorModel{}).Error; err != nil {
				return err
			}
			if err := tx.
				Where("tutoring_session_id IN ?", sessionIDs).
				Delete(&scheduleModel.TutoringSessionModel{}).Error; err != nil {
				return err
			}
		}

		if err := tx.
			Where("attendance_course_code = ?", courseCode).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}

		return tx.
			Where("schedule_id IN ?", scheduleIDs).
			Delete(&scheduleModel.ScheduleModel{}).Error
	})
}

// whereSessionIDs filter batch ID sesi. Di Postgres pakai = ANY(array)
// supaya satu bind param saja; dialek lain jatuh ke IN biasa.
func (s *GormScheduleStore) whereSessionIDs(tx *gorm.DB, column string, ids []int64) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Where(column+" = ANY(?)", pq.Array(ids))
	}
	return tx.Where(column+" IN ?", ids)
}

func sessionFromModel(m scheduleModel.TutoringSessionModel) Session {
	link := ""
	if m.TutoringSessionWhatsappLink != nil {
		link = *m.TutoringSessionWhatsappLink
	}
	return Session{
		ID:           m.TutoringSessionID,
		ScheduleID:   m.TutoringSessionScheduleID,
		Day:          m.TutoringSessionDay,
		Start:        m.TutoringSessionStartTime,
		End:          m.TutoringSessionEndTime,
		Location:     m.TutoringSessionLocation,
		WhatsappLink: link,
		Capacity:     m.TutoringSessionCapacity,
	}
}

func sessionToModel(s Session) scheduleModel.TutoringSessionModel {
	return scheduleModel.TutoringSessionModel{
		TutoringSessionID:           s.ID,
		TutoringSessionScheduleID:   s.ScheduleID,
		TutoringSessionDay:          s.Day,
		TutoringSessionStartTime:    s.Start,
		TutoringSessionEndTime:      s.End,
		TutoringSessionLocation:     s.Location,
		TutoringSessionWhatsappLink: nilIfEmpty(s.WhatsappLink),
		TutoringSessionCapacity:     s.Capacity,
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dateOnly(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
