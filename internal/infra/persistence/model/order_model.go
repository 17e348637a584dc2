package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. The detail columns are a snapshot.
type OrderModel struct {
	ID                 uint                        `gorm:"primaryKey"`
	CustomerUserID     uint                        `gorm:"not null;index"`
	CustomerUser       *UserModel                  `gorm:"foreignKey:CustomerUserID;constraint:OnDelete:CASCADE"`
	BusinessUserID     uint                        `gorm:"not null;index:idx_orders_business_status"`
	BusinessUser       *UserModel                  `gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Revisions          int                         `gorm:"not null"`
	DeliveryTimeInDays int                         `gorm:"not null"`
	Price              decimal.Decimal             `gorm:"type:numeric(10,2);not null"`
	Features           datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	OfferType          string                      `gorm:"type:varchar(20);not null"`
	Status             string                      `gorm:"type:varchar(20);not null;default:'in_progress';index:idx_orders_business_status"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
