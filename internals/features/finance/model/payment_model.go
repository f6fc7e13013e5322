package model

import "time"

type PaymentModel struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	SchoolID    uint              `gorm:"not null;index" json:"school_id"`
	StudentID   uint              `gorm:"not null;index" json:"student_id"`
	Amount      float64           `gorm:"not null" json:"amount"`
	PaymentDate time.Time         `gorm:"not null" json:"payment_date"`
	Method      string            `gorm:"type:varchar(20);not null" json:"method"`
	Reference   *string           `gorm:"type:varchar(120)" json:"reference,omitempty"`
	Notes       *string           `gorm:"type:text" json:"notes,omitempty"`
	FeePayments []FeePaymentModel `gorm:"foreignKey:PaymentID" json:"fee_payments"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

// FeePaymentModel: alokasi sebagian payment ke satu student fee.
type FeePaymentModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PaymentID    uint      `gorm:"not null;index" json:"payment_id"`
	StudentFeeID uint      `gorm:"not null;index" json:"student_fee_id"`
	Amount       float64   `gorm:"not null" json:"amount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }
