package model

import "time"

type AttendanceModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SchoolID  uint      `gorm:"not null;index" json:"school_id"`
	Date      time.Time `gorm:"type:date;not null;index;uniqueIndex:uq_attendance_student_lesson_date" json:"date"`
	Present   bool      `gorm:"not null" json:"present"`
	StudentID uint      `gorm:"not null;index;uniqueIndex:uq_attendance_student_lesson_date" json:"student_id"`
	LessonID  uint      `gorm:"not null;index;uniqueIndex:uq_attendance_student_lesson_date" json:"lesson_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
