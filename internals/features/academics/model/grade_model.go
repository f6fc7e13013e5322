package model

import "time"

type GradeModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SchoolID  uint      `gorm:"not null;index;uniqueIndex:uq_grades_school_level" json:"school_id"`
	Level     int       `gorm:"not null;uniqueIndex:uq_grades_school_level" json:"level"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
