package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items is stored as jsonb.
type OrderModel struct {
	ID                uuid.UUID      `gorm:"column:order_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Items             datatypes.JSON `gorm:"type:jsonb;not null"`
	TotalAmount       float64        `gorm:"type:numeric(12,2);not null"`
	Status            string         `gorm:"type:varchar(30);not null"`
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
