package model

import "time"

// ReviewModel mirrors the 'reviews' table. A reviewer reviews a business at most once.
type ReviewModel struct {
	ID             uint       `gorm:"primaryKey"`
	BusinessUserID uint       `gorm:"not null;uniqueIndex:idx_reviews_business_reviewer"`
	BusinessUser   *UserModel `gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	ReviewerID     uint       `gorm:"not null;uniqueIndex:idx_reviews_business_reviewer;index"`
	Reviewer       *UserModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
	Rating         int        `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Description    string     `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
