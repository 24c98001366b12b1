package services

import (
	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/models"
)

type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

type ChallengeInput struct {
	Day       string `json:"day" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status"`
	ComboJSON string `json:"combo_json" binding:"required"`
}

func (s *ChallengeService) List(userID uint) ([]models.Challenge, error) {
	challenges := make([]models.Challenge, 0)
	err := s.db.Where("user_id = ?", userID).Find(&challenges).Error
	return challenges, err
}

func (s *ChallengeService) Create(userID uint, in ChallengeInput) (*models.Challenge, error) {
	status := in.Status
	if status == "" {
		status = models.ChallengeStatusNotDone
	}
	challenge := models.Challenge{
		UserID:    userID,
		Day:       in.Day,
		Status:    status,
		ComboJSON: in.ComboJSON,
	}
	if err := s.db.Create(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}
