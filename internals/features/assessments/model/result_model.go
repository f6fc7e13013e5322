package model

import "time"

// ResultModel: nilai siswa untuk tepat satu dari exam/assignment
// (XOR dijaga controller + DB check constraint).
type ResultModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SchoolID     uint      `gorm:"not null;index" json:"school_id"`
	Score        int       `gorm:"not null" json:"score"`
	ExamID       *uint     `gorm:"index" json:"exam_id,omitempty"`
	AssignmentID *uint     `gorm:"index" json:"assignment_id,omitempty"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ResultModel) TableName() string { return "results" }
