package model

import "time"

type FeeModel struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SchoolID    uint       `gorm:"not null;index" json:"school_id"`
	Name        string     `gorm:"type:varchar(120);not null" json:"name"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Frequency   string     `gorm:"type:varchar(10);not null" json:"frequency"`
	GradeID     *uint      `gorm:"index" json:"grade_id,omitempty"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FeeModel) TableName() string { return "fees" }
