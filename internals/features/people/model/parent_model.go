package model

import "time"

type ParentModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SchoolID  uint      `gorm:"not null;index;uniqueIndex:uq_parents_school_username;uniqueIndex:uq_parents_school_phone" json:"school_id"`
	Username  string    `gorm:"type:varchar(60);not null;uniqueIndex:uq_parents_school_username" json:"username"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Surname   string    `gorm:"type:varchar(100);not null" json:"surname"`
	Email     *string   `gorm:"type:varchar(120)" json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(30);uniqueIndex:uq_parents_school_phone" json:"phone,omitempty"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ParentModel) TableName() string { return "parents" }
