package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"sbitm-backend/controllers"
	"sbitm-backend/middleware"
)

const defaultSessionSecret = "sbitm-pro-secret-2024-advanced"

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func sessionSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = defaultSessionSecret
	}
	return []byte(secret)
}

// SetupRouter wires middleware and the full API surface.
func SetupRouter(
	sc *controllers.SubmissionController,
	ac *controllers.AuthController,
	adc *controllers.AdminController,
	cc *controllers.ContentController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/static", "./static")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore(sessionSecret())
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("sbitm_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "SBITM Website",
			"version":   "1.0.0",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		// Lead capture
		api.POST("/contact", sc.SubmitEnquiry)
		api.POST("/apply", sc.SubmitApplication)
		api.POST("/newsletter", sc.SubscribeNewsletter)

		// Read-only catalog
		api.GET("/college", cc.College)
		api.GET("/programs", cc.Programs)
		api.GET("/placements", cc.Placements)
		api.GET("/facilities", cc.Facilities)
		api.GET("/faculty", cc.Faculty)
		api.GET("/departments", cc.Departments)
		api.GET("/gallery", cc.Gallery)
		api.GET("/stats", cc.Stats)

		admin := api.Group("/admin")
		{
			admin.POST("/login", ac.Login)
			admin.GET("/logout", ac.Logout)
			admin.GET("/session", ac.Session)

			protected := admin.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.GET("/dashboard", adc.Dashboard)
				protected.GET("/enquiries", adc.ListEnquiries)
				protected.GET("/applications", adc.ListApplications)
			}
		}
	}

	return r
}
