package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sbitm-backend/models"
)

// AuthService verifies admin credentials against stored bcrypt hashes.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate checks username/password and returns the matching admin.
// Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials so the response cannot be used to enumerate accounts.
// There is no lockout or rate limiting; repeated attempts are all verified.
func (s *AuthService) Authenticate(username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}
