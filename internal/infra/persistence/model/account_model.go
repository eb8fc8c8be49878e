// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table. The id is a database-generated
// auto-incrementing integer; username and email each carry a unique index so
// duplicate registrations are rejected by the database at insert time.
type AccountModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null;default:current_timestamp"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
