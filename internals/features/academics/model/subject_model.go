package model

import "time"

type SubjectModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SchoolID  uint      `gorm:"not null;index;uniqueIndex:uq_subjects_school_name" json:"school_id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_subjects_school_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

// SubjectTeacherModel: join eksplisit subject ↔ teacher (tanpa tag many2many).
type SubjectTeacherModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SubjectID uint      `gorm:"not null;index;uniqueIndex:uq_subject_teachers" json:"subject_id"`
	TeacherID uint      `gorm:"not null;index;uniqueIndex:uq_subject_teachers" json:"teacher_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SubjectTeacherModel) TableName() string { return "subject_teachers" }
