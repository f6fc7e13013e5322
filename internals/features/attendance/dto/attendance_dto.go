package dto

import (
	"time"

	"schoolku_backend/internals/features/attendance/model"
)

type AttendanceRequest struct {
	SchoolID  uint   `json:"school_id" validate:"required,min=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Present   bool   `json:"present"`
	StudentID uint   `json:"student_id" validate:"required,min=1"`
	LessonID  uint   `json:"lesson_id" validate:"required,min=1"`
}

type AttendanceResponse struct {
	ID        uint      `json:"id"`
	SchoolID  uint      `json:"school_id"`
	Date      string    `json:"date"`
	Present   bool      `json:"present"`
	StudentID uint      `json:"student_id"`
	LessonID  uint      `json:"lesson_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *AttendanceRequest) ApplyToModel(m *model.AttendanceModel) {
	m.SchoolID = r.SchoolID
	if t, err := time.Parse("2006-01-02", r.Date); err == nil {
		m.Date = t
	}
	m.Present = r.Present
	m.StudentID = r.StudentID
	m.LessonID = r.LessonID
}

func ToAttendanceResponse(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{ID: m.ID, SchoolID: m.SchoolID,
		Date: m.Date.Format("2006-01-02"), Present: m.Present,
		StudentID: m.StudentID, LessonID: m.LessonID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToAttendanceResponses(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAttendanceResponse(m))
	}
	return out
}
