package controllers

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sbitm-backend/content"
	"sbitm-backend/services"
	"sbitm-backend/utils"
)

// ContentController serves the read-only institutional catalog and the public
// stats endpoint. The catalog is built once at startup and never mutated.
type ContentController struct {
	Catalog  *content.Catalog
	AdminSvc *services.AdminService
}

func NewContentController(catalog *content.Catalog, adminSvc *services.AdminService) *ContentController {
	return &ContentController{Catalog: catalog, AdminSvc: adminSvc}
}

// Programs (GET /api/programs)
func (ctrl *ContentController) Programs(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"programs": ctrl.Catalog.Programs})
}

// Placements (GET /api/placements)
func (ctrl *ContentController) Placements(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"placements": ctrl.Catalog.Placements})
}

// Facilities (GET /api/facilities)
func (ctrl *ContentController) Facilities(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"facilities": ctrl.Catalog.Facilities})
}

// Faculty (GET /api/faculty)
func (ctrl *ContentController) Faculty(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"faculty": ctrl.Catalog.Faculty})
}

// Departments (GET /api/departments)
func (ctrl *ContentController) Departments(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"departments": ctrl.Catalog.Departments})
}

// Gallery (GET /api/gallery)
func (ctrl *ContentController) Gallery(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"gallery": ctrl.Catalog.Gallery})
}

// College (GET /api/college)
func (ctrl *ContentController) College(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"college":     ctrl.Catalog.College,
		"hero_slides": ctrl.Catalog.HeroSlides,
		"quick_stats": ctrl.Catalog.QuickStats,
	})
}

// Stats (GET /api/stats) mixes stored totals with illustrative daily numbers.
func (ctrl *ContentController) Stats(c *gin.Context) {
	counts, err := ctrl.AdminSvc.Counts()
	if err != nil {
		log.Printf("Stats error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"stats": gin.H{
			"contacts_today":         rand.Intn(16) + 5,
			"applications_month":     rand.Intn(101) + 50,
			"total_contacts":         counts.Enquiries,
			"total_applications":     counts.Applications,
			"newsletter_subscribers": counts.Subscriptions,
			"visitors_today":         rand.Intn(401) + 100,
			"timestamp":              time.Now().Format(time.RFC3339),
		},
	})
}
