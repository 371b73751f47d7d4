package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbitm-backend/services"
	"sbitm-backend/utils"
)

type SubmissionController struct {
	SubmissionSvc *services.SubmissionService
}

func NewSubmissionController(svc *services.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionSvc: svc}
}

// SubmitEnquiry (POST /api/contact)
func (ctrl *SubmissionController) SubmitEnquiry(c *gin.Context) {
	var input services.EnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	reference, err := ctrl.SubmissionSvc.SubmitEnquiry(input)
	if err != nil {
		if services.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Contact form error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":   "Thank you! We'll contact you soon.",
		"reference": reference,
	})
}

// SubmitApplication (POST /api/apply)
func (ctrl *SubmissionController) SubmitApplication(c *gin.Context) {
	var input services.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	reference, err := ctrl.SubmissionSvc.SubmitApplication(input)
	if err != nil {
		if services.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Application error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":        "Application submitted successfully!",
		"application_id": reference,
		"next_steps":     "Our admissions team will contact you within 48 hours.",
	})
}

// SubscribeNewsletter (POST /api/newsletter)
func (ctrl *SubmissionController) SubscribeNewsletter(c *gin.Context) {
	var input services.NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := ctrl.SubmissionSvc.SubscribeNewsletter(input); err != nil {
		if services.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Newsletter error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Subscription failed. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Successfully subscribed to newsletter!",
	})
}
