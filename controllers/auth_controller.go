package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"sbitm-backend/middleware"
	"sbitm-backend/services"
	"sbitm-backend/utils"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login (POST /api/admin/login) accepts a JSON or form body and establishes
// the session on success. Unknown usernames and wrong passwords get the same
// response.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	admin, err := ctrl.AuthSvc.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("Login error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionAdminKey, admin.Username)
	if err := session.Save(); err != nil {
		log.Printf("Session save error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":  "Logged in",
		"username": admin.Username,
	})
}

// Logout (GET /api/admin/logout) clears the session unconditionally.
func (ctrl *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("Session save error: %v", err)
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Session (GET /api/admin/session) reports the current session state so a
// frontend can decide between login form and dashboard.
func (ctrl *AuthController) Session(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get(middleware.SessionAdminKey)
	if username == nil {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"authenticated": false})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"authenticated": true,
		"username":      username,
	})
}
