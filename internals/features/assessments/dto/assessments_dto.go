package dto

import (
	"errors"
	"time"

	"schoolku_backend/internals/features/assessments/model"
)

var ErrResultTarget = errors.New("exactly one of exam_id or assignment_id must be set")

/* ===============================
   Exam
=================================*/

type ExamRequest struct {
	SchoolID  uint   `json:"school_id" validate:"required,min=1"`
	Title     string `json:"title" validate:"required,max=150"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	LessonID  uint   `json:"lesson_id" validate:"required,min=1"`
}

type ExamResponse struct {
	ID        uint      `json:"id"`
	SchoolID  uint      `json:"school_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	LessonID  uint      `json:"lesson_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ExamRequest) ApplyToModel(m *model.ExamModel) error {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return err
	}
	m.SchoolID = r.SchoolID
	m.Title = r.Title
	m.StartTime = start
	m.EndTime = end
	m.LessonID = r.LessonID
	return nil
}

func ToExamResponse(m model.ExamModel) ExamResponse {
	return ExamResponse{ID: m.ID, SchoolID: m.SchoolID, Title: m.Title,
		StartTime: m.StartTime, EndTime: m.EndTime, LessonID: m.LessonID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToExamResponses(ms []model.ExamModel) []ExamResponse {
	out := make([]ExamResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToExamResponse(m))
	}
	return out
}

/* ===============================
   Assignment
=================================*/

type AssignmentRequest struct {
	SchoolID  uint   `json:"school_id" validate:"required,min=1"`
	Title     string `json:"title" validate:"required,max=150"`
	StartDate string `json:"start_date" validate:"required"`
	DueDate   string `json:"due_date" validate:"required"`
	LessonID  uint   `json:"lesson_id" validate:"required,min=1"`
}

type AssignmentResponse struct {
	ID        uint      `json:"id"`
	SchoolID  uint      `json:"school_id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	DueDate   time.Time `json:"due_date"`
	LessonID  uint      `json:"lesson_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *AssignmentRequest) ApplyToModel(m *model.AssignmentModel) error {
	start, err := time.Parse(time.RFC3339, r.StartDate)
	if err != nil {
		return err
	}
	due, err := time.Parse(time.RFC3339, r.DueDate)
	if err != nil {
		return err
	}
	m.SchoolID = r.SchoolID
	m.Title = r.Title
	m.StartDate = start
	m.DueDate = due
	m.LessonID = r.LessonID
	return nil
}

func ToAssignmentResponse(m model.AssignmentModel) AssignmentResponse {
	return AssignmentResponse{ID: m.ID, SchoolID: m.SchoolID, Title: m.Title,
		StartDate: m.StartDate, DueDate: m.DueDate, LessonID: m.LessonID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToAssignmentResponses(ms []model.AssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAssignmentResponse(m))
	}
	return out
}

/* ===============================
   Result
=================================*/

type ResultRequest struct {
	SchoolID     uint  `json:"school_id" validate:"required,min=1"`
	Score        int   `json:"score" validate:"min=0,max=100"`
	ExamID       *uint `json:"exam_id" validate:"omitempty,min=1"`
	AssignmentID *uint `json:"assignment_id" validate:"omitempty,min=1"`
	StudentID    uint  `json:"student_id" validate:"required,min=1"`
}

// CheckTarget jaga aturan XOR: tepat satu target nilai.
func (r *ResultRequest) CheckTarget() error {
	if (r.ExamID == nil) == (r.AssignmentID == nil) {
		return ErrResultTarget
	}
	return nil
}

type ResultResponse struct {
	ID           uint      `json:"id"`
	SchoolID     uint      `json:"school_id"`
	Score        int       `json:"score"`
	ExamID       *uint     `json:"exam_id,omitempty"`
	AssignmentID *uint     `json:"assignment_id,omitempty"`
	StudentID    uint      `json:"student_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *ResultRequest) ApplyToModel(m *model.ResultModel) {
	m.SchoolID = r.SchoolID
	m.Score = r.Score
	m.ExamID = r.ExamID
	m.AssignmentID = r.AssignmentID
	m.StudentID = r.StudentID
}

func ToResultResponse(m model.ResultModel) ResultResponse {
	return ResultResponse{ID: m.ID, SchoolID: m.SchoolID, Score: m.Score,
		ExamID: m.ExamID, AssignmentID: m.AssignmentID, StudentID: m.StudentID,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToResultResponses(ms []model.ResultModel) []ResultResponse {
	out := make([]ResultResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToResultResponse(m))
	}
	return out
}
