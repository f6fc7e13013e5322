package model

import "time"

// Status tagihan — selalu hasil derivasi, tidak pernah diset klien.
const (
	FeeStatusPending = "PENDING"
	FeeStatusPartial = "PARTIAL"
	FeeStatusPaid    = "PAID"
	FeeStatusOverdue = "OVERDUE"
)

type StudentFeeModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SchoolID   uint      `gorm:"not null;index" json:"school_id"`
	FeeID      uint      `gorm:"not null;index" json:"fee_id"`
	StudentID  uint      `gorm:"not null;index" json:"student_id"`
	Amount     float64   `gorm:"not null" json:"amount"`
	PaidAmount float64   `gorm:"not null;default:0" json:"paid_amount"`
	DueDate    time.Time `gorm:"type:date;not null" json:"due_date"`
	Status     string    `gorm:"type:varchar(10);not null;default:PENDING" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentFeeModel) TableName() string { return "student_fees" }
