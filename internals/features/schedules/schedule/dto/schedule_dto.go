package dto

import (
	"mytutor_backend/internals/features/schedules/schedule/service"
)

// =======================
// Request DTO
// =======================

// SessionRequest satu sesi dari payload editor jadwal.
// tutoring_session_id 0 = sesi baru (pending create).
type SessionRequest struct {
	TutoringSessionID           int64   `json:"tutoring_session_id"`
	TutoringSessionDay          string  `json:"tutoring_session_day" validate:"required"`
	TutoringSessionStartTime    float64 `json:"tutoring_session_start_time" validate:"required"`
	TutoringSessionEndTime      float64 `json:"tutoring_session_end_time" validate:"required,gtfield=TutoringSessionStartTime"`
	TutoringSessionLocation     string  `json:"tutoring_session_location" validate:"required,max=255"`
	TutoringSessionWhatsappLink string  `json:"tutoring_session_whatsapp_link" validate:"omitempty,url"`
	TutoringSessionCapacity     int     `json:"tutoring_session_capacity" validate:"required,gt=0"`
}

func (r SessionRequest) ToSession() service.Session {
	return service.Session{
		ID:           r.TutoringSessionID,
		Day:          r.TutoringSessionDay,
		Start:        r.TutoringSessionStartTime,
		End:          r.TutoringSessionEndTime,
		Location:     r.TutoringSessionLocation,
		WhatsappLink: r.TutoringSessionWhatsappLink,
		Capacity:     r.TutoringSessionCapacity,
	}
}

// SaveScheduleRequest payload reconcile: daftar lama (baseline editor) +
// daftar baru (hasil edit). old_sessions boleh dikosongkan, server pakai
// keadaan tersimpan sebagai baseline.
type SaveScheduleRequest struct {
	ScheduleYear int              `json:"schedule_year" validate:"required,gte=2000"`
	OldSessions  []SessionRequest `json:"old_sessions"`
	NewSessions  []SessionRequest `json:"new_sessions" validate:"dive"`
}

// =======================
// Response DTO
// =======================

type SessionResponse struct {
	TutoringSessionID           int64    `json:"tutoring_session_id"`
	TutoringSessionDay          string   `json:"tutoring_session_day"`
	TutoringSessionStartTime    float64  `json:"tutoring_session_start_time"`
	TutoringSessionEndTime      float64  `json:"tutoring_session_end_time"`
	TutoringSessionLocation     string   `json:"tutoring_session_location"`
	TutoringSessionWhatsappLink string   `json:"tutoring_session_whatsapp_link,omitempty"`
	TutoringSessionCapacity     int      `json:"tutoring_session_capacity"`
	TutoringSessionRoster       []string `json:"tutoring_session_roster"`
	TutoringSessionOpenSlots    int      `json:"tutoring_session_open_slots"`
}

func FromSession(s service.Session) SessionResponse {
	roster := s.Roster
	if roster == nil {
		roster = []string{}
	}
	return SessionResponse{
		TutoringSessionID:           s.ID,
		TutoringSessionDay:          s.Day,
		TutoringSessionStartTime:    s.Start,
		TutoringSessionEndTime:      s.End,
		TutoringSessionLocation:     s.Location,
		TutoringSessionWhatsappLink: s.WhatsappLink,
		TutoringSessionCapacity:     s.Capacity,
		TutoringSessionRoster:       roster,
		TutoringSessionOpenSlots:    s.AvailableSlots(),
	}
}

type ScheduleResponse struct {
	ScheduleID         int64             `json:"schedule_id"`
	ScheduleCourseCode string            `json:"schedule_course_code"`
	ScheduleYear       int               `json:"schedule_year"`
	Sessions           []SessionResponse `json:"sessions"`
	Grid               *service.TimeGrid `json:"grid,omitempty"`
}

func FromSchedule(sched service.Schedule, grid *service.TimeGrid) ScheduleResponse {
	sessions := make([]SessionResponse, 0, len(sched.Sessions))
	for _, s := range sched.Sessions {
		sessions = append(sessions, FromSession(s))
	}
	return ScheduleResponse{
		ScheduleID:         sched.ID,
		ScheduleCourseCode: sched.CourseCode,
		ScheduleYear:       sched.Year,
		Sessions:           sessions,
		Grid:               grid,
	}
}
