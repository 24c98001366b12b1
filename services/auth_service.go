package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/models"
	"github.com/chunponglai/tricks-planner/utils"
)

type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenMaker
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenMaker) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates a new user. Emails are unique as stored, with no
// case normalization.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, PasswordHash: hash}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate returns a signed access token. Unknown email and wrong
// password fail identically.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email)
}
