package model

import "time"

type ClassModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SchoolID     uint      `gorm:"not null;index;uniqueIndex:uq_classes_school_name" json:"school_id"`
	Name         string    `gorm:"type:varchar(60);not null;uniqueIndex:uq_classes_school_name" json:"name"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	GradeID      uint      `gorm:"not null;index" json:"grade_id"`
	SupervisorID *uint     `gorm:"index" json:"supervisor_id,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
