package model

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentGatewayEventModel: jejak mentah notifikasi gateway (midtrans).
type PaymentGatewayEventModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PaymentID *uint          `gorm:"index" json:"payment_id,omitempty"`
	OrderID   string         `gorm:"type:varchar(64);not null;index" json:"order_id"`
	Provider  string         `gorm:"type:varchar(20);not null;default:midtrans" json:"provider"`
	Status    string         `gorm:"type:varchar(30);not null" json:"status"`
	Signature *string        `gorm:"type:varchar(255)" json:"signature,omitempty"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	Headers   datatypes.JSON `gorm:"type:jsonb" json:"headers"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentGatewayEventModel) TableName() string { return "payment_gateway_events" }
