package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(254);not null;default:''"`
	PasswordHash string    `gorm:"type:varchar(128);not null"`
	FirstName    string    `gorm:"type:varchar(150);not null;default:''"`
	LastName     string    `gorm:"type:varchar(150);not null;default:''"`
	IsStaff      bool      `gorm:"not null;default:false"`
	DateJoined   time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID is unique, one profile per user.
type ProfileModel struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint       `gorm:"uniqueIndex;not null"`
	User         *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Type         string     `gorm:"type:varchar(20);not null;index"`
	File         string     `gorm:"type:varchar(255);not null;default:''"`
	Location     string     `gorm:"type:varchar(255);not null;default:''"`
	Tel          string     `gorm:"type:varchar(50);not null;default:''"`
	Description  string     `gorm:"type:text;not null;default:''"`
	WorkingHours string     `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
