package services

import (
	"gorm.io/gorm"

	"sbitm-backend/models"
)

// AdminService reads stored submissions for the admin area and the public
// stats endpoint. All queries are read-only projections, newest first.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// SubmissionCounts holds the per-table totals shown on the dashboard.
type SubmissionCounts struct {
	Enquiries     int64 `json:"enquiries"`
	Applications  int64 `json:"applications"`
	Subscriptions int64 `json:"newsletter_subscribers"`
}

func (s *AdminService) Counts() (SubmissionCounts, error) {
	var counts SubmissionCounts
	if err := s.DB.Model(&models.Enquiry{}).Count(&counts.Enquiries).Error; err != nil {
		return counts, err
	}
	if err := s.DB.Model(&models.Application{}).Count(&counts.Applications).Error; err != nil {
		return counts, err
	}
	if err := s.DB.Model(&models.NewsletterSubscription{}).Count(&counts.Subscriptions).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

func (s *AdminService) RecentEnquiries(limit int) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&enquiries).Error
	return enquiries, err
}

func (s *AdminService) RecentApplications(limit int) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&applications).Error
	return applications, err
}

func (s *AdminService) ListEnquiries() ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := s.DB.Order("created_at DESC").Find(&enquiries).Error
	return enquiries, err
}

func (s *AdminService) ListApplications() ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.Order("created_at DESC").Find(&applications).Error
	return applications, err
}
