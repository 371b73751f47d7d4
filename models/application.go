package models

import "time"

// Application is an admission application submitted from the apply form.
type Application struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"size:150;not null" json:"first_name"`
	LastName      string    `gorm:"size:150;not null" json:"last_name"`
	Email         string    `gorm:"size:150;not null" json:"email"`
	Phone         string    `gorm:"size:50;not null" json:"phone"`
	Program       string    `gorm:"size:150;not null" json:"program"`
	Qualification *string   `gorm:"size:255" json:"qualification,omitempty"`
	Percentage    *float64  `json:"percentage,omitempty"`
	Message       *string   `gorm:"type:text" json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `gorm:"size:32;default:'pending'" json:"status"`
}

const ApplicationStatusPending = "pending"
