package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbitm-backend/services"
	"sbitm-backend/utils"
)

const dashboardRecentLimit = 5

type AdminController struct {
	AdminSvc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{AdminSvc: svc}
}

// Dashboard (GET /api/admin/dashboard) returns submission totals and the
// five most recent enquiries and applications.
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	counts, err := ctrl.AdminSvc.Counts()
	if err != nil {
		log.Printf("Dashboard error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	recentEnquiries, err := ctrl.AdminSvc.RecentEnquiries(dashboardRecentLimit)
	if err != nil {
		log.Printf("Dashboard error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	recentApplications, err := ctrl.AdminSvc.RecentApplications(dashboardRecentLimit)
	if err != nil {
		log.Printf("Dashboard error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"counts":              counts,
		"recent_enquiries":    recentEnquiries,
		"recent_applications": recentApplications,
	})
}

// ListEnquiries (GET /api/admin/enquiries)
func (ctrl *AdminController) ListEnquiries(c *gin.Context) {
	enquiries, err := ctrl.AdminSvc.ListEnquiries()
	if err != nil {
		log.Printf("Enquiry list error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"enquiries": enquiries})
}

// ListApplications (GET /api/admin/applications)
func (ctrl *AdminController) ListApplications(c *gin.Context) {
	applications, err := ctrl.AdminSvc.ListApplications()
	if err != nil {
		log.Printf("Application list error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"applications": applications})
}
