package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID          uint               `gorm:"primaryKey"`
	UserID      uint               `gorm:"not null;index"`
	User        *UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string             `gorm:"type:varchar(255);not null"`
	Image       string             `gorm:"type:varchar(255);not null;default:''"`
	Description string             `gorm:"type:text;not null;default:''"`
	Details     []OfferDetailModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferDetailModel mirrors the 'offer_details' table.
type OfferDetailModel struct {
	ID                 uint                        `gorm:"primaryKey"`
	OfferID            uint                        `gorm:"not null;index"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Revisions          int                         `gorm:"not null"`
	DeliveryTimeInDays int                         `gorm:"not null;check:delivery_time_in_days >= 0"`
	Price              decimal.Decimal             `gorm:"type:numeric(10,2);not null"`
	Features           datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	OfferType          string                      `gorm:"type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OfferDetailModel) TableName() string {
	return "offer_details"
}
