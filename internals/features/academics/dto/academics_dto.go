package dto

import (
	"time"

	"schoolku_backend/internals/features/academics/model"
)

/* ===============================
   Grade
=================================*/

type GradeRequest struct {
	SchoolID uint `json:"school_id" validate:"required,min=1"`
	Level    int  `json:"level" validate:"required,min=1,max=12"`
}

type GradeResponse struct {
	ID        uint      `json:"id"`
	SchoolID  uint      `json:"school_id"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *GradeRequest) ToModel() model.GradeModel {
	return model.GradeModel{SchoolID: r.SchoolID, Level: r.Level}
}

func (r *GradeRequest) ApplyToModel(m *model.GradeModel) {
	m.SchoolID = r.SchoolID
	m.Level = r.Level
}

func ToGradeResponse(m model.GradeModel) GradeResponse {
	return GradeResponse{ID: m.ID, SchoolID: m.SchoolID, Level: m.Level,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToGradeResponses(ms []model.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGradeResponse(m))
	}
	return out
}

/* ===============================
   Class
=================================*/

type ClassRequest struct {
	SchoolID     uint   `json:"school_id" validate:"required,min=1"`
	Name         string `json:"name" validate:"required,max=60"`
	Capacity     int    `json:"capacity" validate:"required,min=1,max=200"`
	GradeID      uint   `json:"grade_id" validate:"required,min=1"`
	SupervisorID *uint  `json:"supervisor_id" validate:"omitempty,min=1"`
}

type ClassResponse struct {
	ID           uint      `json:"id"`
	SchoolID     uint      `json:"school_id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	GradeID      uint      `json:"grade_id"`
	SupervisorID *uint     `json:"supervisor_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *ClassRequest) ToModel() model.ClassModel {
	m := model.ClassModel{}
	r.ApplyToModel(&m)
	return m
}

func (r *ClassRequest) ApplyToModel(m *model.ClassModel) {
	m.SchoolID = r.SchoolID
	m.Name = r.Name
	m.Capacity = r.Capacity
	m.GradeID = r.GradeID
	m.SupervisorID = r.SupervisorID
}

func ToClassResponse(m model.ClassModel) ClassResponse {
	return ClassResponse{ID: m.ID, SchoolID: m.SchoolID, Name: m.Name,
		Capacity: m.Capacity, GradeID: m.GradeID, SupervisorID: m.SupervisorID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToClassResponses(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToClassResponse(m))
	}
	return out
}

/* ===============================
   Subject
=================================*/

type SubjectRequest struct {
	SchoolID   uint   `json:"school_id" validate:"required,min=1"`
	Name       string `json:"name" validate:"required,max=100"`
	TeacherIDs []uint `json:"teacher_ids" validate:"omitempty,dive,min=1"`
}

type SubjectResponse struct {
	ID         uint      `json:"id"`
	SchoolID   uint      `json:"school_id"`
	Name       string    `json:"name"`
	TeacherIDs []uint    `json:"teacher_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *SubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{SchoolID: r.SchoolID, Name: r.Name}
}

func (r *SubjectRequest) ApplyToModel(m *model.SubjectModel) {
	m.SchoolID = r.SchoolID
	m.Name = r.Name
}

func ToSubjectResponse(m model.SubjectModel, teacherIDs []uint) SubjectResponse {
	if teacherIDs == nil {
		teacherIDs = []uint{}
	}
	return SubjectResponse{ID: m.ID, SchoolID: m.SchoolID, Name: m.Name,
		TeacherIDs: teacherIDs, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

/* ===============================
   Lesson
=================================*/

type LessonRequest struct {
	SchoolID  uint   `json:"school_id" validate:"required,min=1"`
	Name      string `json:"name" validate:"required,max=100"`
	Day       string `json:"day" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	SubjectID uint   `json:"subject_id" validate:"required,min=1"`
	ClassID   uint   `json:"class_id" validate:"required,min=1"`
	TeacherID uint   `json:"teacher_id" validate:"required,min=1"`
}

type LessonResponse struct {
	ID        uint      `json:"id"`
	SchoolID  uint      `json:"school_id"`
	Name      string    `json:"name"`
	Day       string    `json:"day"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	SubjectID uint      `json:"subject_id"`
	ClassID   uint      `json:"class_id"`
	TeacherID uint      `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyToModel parse RFC3339; start < end dicek controller.
func (r *LessonRequest) ApplyToModel(m *model.LessonModel) error {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return err
	}
	m.SchoolID = r.SchoolID
	m.Name = r.Name
	m.Day = r.Day
	m.StartTime = start
	m.EndTime = end
	m.SubjectID = r.SubjectID
	m.ClassID = r.ClassID
	m.TeacherID = r.TeacherID
	return nil
}

func ToLessonResponse(m model.LessonModel) LessonResponse {
	return LessonResponse{ID: m.ID, SchoolID: m.SchoolID, Name: m.Name, Day: m.Day,
		StartTime: m.StartTime, EndTime: m.EndTime, SubjectID: m.SubjectID,
		ClassID: m.ClassID, TeacherID: m.TeacherID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToLessonResponses(ms []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLessonResponse(m))
	}
	return out
}
