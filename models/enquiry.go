package models

import "time"

// Enquiry is a message submitted through the public contact form.
type Enquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:150;not null" json:"email"`
	Phone     *string   `gorm:"size:50" json:"phone,omitempty"`
	Subject   *string   `gorm:"size:255" json:"subject,omitempty"`
	Message   *string   `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `gorm:"size:32;default:'new'" json:"status"`
}

const EnquiryStatusNew = "new"
