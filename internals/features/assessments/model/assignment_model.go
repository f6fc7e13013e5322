package model

import "time"

type AssignmentModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SchoolID  uint      `gorm:"not null;index" json:"school_id"`
	Title     string    `gorm:"type:varchar(150);not null" json:"title"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	LessonID  uint      `gorm:"not null;index" json:"lesson_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AssignmentModel) TableName() string { return "assignments" }
