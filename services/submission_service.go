package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sbitm-backend/models"
	"sbitm-backend/utils"
)

// SubmissionService persists the three lead workflows: contact enquiries,
// admission applications and newsletter subscriptions.
type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

type EnquiryInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

type ApplicationInput struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Program       string   `json:"program"`
	Qualification *string  `json:"qualification"`
	Percentage    *float64 `json:"percentage"`
	Message       *string  `json:"message"`
}

type NewsletterInput struct {
	Email string `json:"email"`
}

// SubmitEnquiry validates and stores a contact enquiry and returns its
// reference (ENQ + timestamp). Name and email are required; everything else
// is optional and stored as given.
func (s *SubmissionService) SubmitEnquiry(in EnquiryInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return "", NewValidationError("Name and email are required")
	}

	enquiry := models.Enquiry{
		Name:    name,
		Email:   email,
		Phone:   trimOptional(in.Phone),
		Subject: trimOptional(in.Subject),
		Message: trimOptional(in.Message),
		Status:  models.EnquiryStatusNew,
	}
	if err := s.DB.Create(&enquiry).Error; err != nil {
		return "", fmt.Errorf("failed to save enquiry: %w", err)
	}

	return utils.Reference("ENQ"), nil
}

// SubmitApplication validates and stores an admission application and returns
// its reference (APP + timestamp). The validation error names the first
// missing required field.
func (s *SubmissionService) SubmitApplication(in ApplicationInput) (string, error) {
	required := []struct {
		label string
		value string
	}{
		{"First Name", in.FirstName},
		{"Last Name", in.LastName},
		{"Email", in.Email},
		{"Phone", in.Phone},
		{"Program", in.Program},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return "", NewValidationError(field.label + " is required")
		}
	}

	application := models.Application{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Program:       strings.TrimSpace(in.Program),
		Qualification: trimOptional(in.Qualification),
		Percentage:    in.Percentage,
		Message:       trimOptional(in.Message),
		Status:        models.ApplicationStatusPending,
	}
	if err := s.DB.Create(&application).Error; err != nil {
		return "", fmt.Errorf("failed to save application: %w", err)
	}

	return utils.Reference("APP"), nil
}

// SubscribeNewsletter records a subscription. The email column is the natural
// key: re-subscribing an existing address reactivates the row via the store's
// own conflict clause instead of inserting a duplicate, so concurrent
// submissions of the same email cannot race a check-then-insert.
func (s *SubmissionService) SubscribeNewsletter(in NewsletterInput) error {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return NewValidationError("Email is required")
	}

	subscription := models.NewsletterSubscription{
		Email:  email,
		Active: true,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"active": true}),
	}).Create(&subscription).Error
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
