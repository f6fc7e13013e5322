package model

import "time"

type StudentModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SchoolID  uint      `gorm:"not null;index;uniqueIndex:uq_students_school_username;uniqueIndex:uq_students_school_phone" json:"school_id"`
	Username  string    `gorm:"type:varchar(60);not null;uniqueIndex:uq_students_school_username" json:"username"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Surname   string    `gorm:"type:varchar(100);not null" json:"surname"`
	Email     *string   `gorm:"type:varchar(120)" json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(30);uniqueIndex:uq_students_school_phone" json:"phone,omitempty"`
	Address   string    `gorm:"type:text" json:"address"`
	Img       *string   `gorm:"type:text" json:"img,omitempty"`
	BloodType *string   `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	Sex       string    `gorm:"type:varchar(10);not null" json:"sex"`
	Birthday  time.Time `gorm:"type:date;not null" json:"birthday"`
	ClassID   uint      `gorm:"not null;index" json:"class_id"`
	GradeID   uint      `gorm:"not null;index" json:"grade_id"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string { return "students" }
