package models

import "time"

type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never returned in JSON
	CreatedAt    time.Time `json:"created_at"`
}
