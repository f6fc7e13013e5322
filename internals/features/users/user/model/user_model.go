package model

import (
	"time"
)

// UserModel = credential record. Opsional terhubung ke tepat satu dari
// Teacher/Student/Parent (kolom FK nullable, maksimal satu yang terisi).
type UserModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SchoolID uint `gorm:"not null;index;uniqueIndex:uq_users_school_username;uniqueIndex:uq_users_school_email" json:"school_id"`

	Username     string `gorm:"type:varchar(60);not null;uniqueIndex:uq_users_school_username" json:"username"`
	Email        string `gorm:"type:varchar(120);not null;uniqueIndex:uq_users_school_email" json:"email"`
	PasswordHash string `gorm:"type:varchar(100);not null" json:"-"`

	// admin | teacher | student | parent
	Role string `gorm:"type:varchar(20);not null" json:"role"`

	TeacherID *uint `gorm:"index" json:"teacher_id,omitempty"`
	StudentID *uint `gorm:"index" json:"student_id,omitempty"`
	ParentID  *uint `gorm:"index" json:"parent_id,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// LinkedPersonID kembalikan FK person yang terisi (kalau ada).
func (u *UserModel) LinkedPersonID() *uint {
	switch {
	case u.TeacherID != nil:
		return u.TeacherID
	case u.StudentID != nil:
		return u.StudentID
	case u.ParentID != nil:
		return u.ParentID
	}
	return nil
}
