package models

import "time"

// NewsletterSubscription keeps one row per email address. Re-subscribing an
// existing address reactivates it instead of inserting a duplicate.
type NewsletterSubscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:150;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
	Active       bool      `gorm:"default:true" json:"active"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
