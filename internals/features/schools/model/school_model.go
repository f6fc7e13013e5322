package model

import (
	"time"
)

// SchoolModel = tenant root. Semua entity lain nge-scope ke school_id.
type SchoolModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"type:varchar(120);not null;uniqueIndex" json:"name"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	Country string `gorm:"type:varchar(100);not null;default:'Indonesia'" json:"country"`

	// IANA timezone — dipakai dashboard buat normalisasi tanggal kalender
	Timezone string `gorm:"type:varchar(64);not null;default:'Asia/Jakarta'" json:"timezone"`

	Phone string `gorm:"type:varchar(30)" json:"phone"`
	Email string `gorm:"type:varchar(120)" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
