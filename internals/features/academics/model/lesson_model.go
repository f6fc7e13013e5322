package model

import "time"

type LessonModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SchoolID  uint      `gorm:"not null;index" json:"school_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Day       string    `gorm:"type:varchar(10);not null" json:"day"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	SubjectID uint      `gorm:"not null;index" json:"subject_id"`
	ClassID   uint      `gorm:"not null;index" json:"class_id"`
	TeacherID uint      `gorm:"not null;index" json:"teacher_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LessonModel) TableName() string { return "lessons" }
