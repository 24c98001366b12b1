package services

import (
	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/models"
)

type TrickService struct {
	db *gorm.DB
}

func NewTrickService(db *gorm.DB) *TrickService {
	return &TrickService{db: db}
}

type TrickInput struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Difficulty string `json:"difficulty"`
}

func (s *TrickService) List(userID uint) ([]models.Trick, error) {
	tricks := make([]models.Trick, 0)
	err := s.db.Where("user_id = ?", userID).Find(&tricks).Error
	return tricks, err
}

func (s *TrickService) Create(userID uint, in TrickInput) (*models.Trick, error) {
	trick := models.Trick{
		UserID:     userID,
		Name:       in.Name,
		Category:   in.Category,
		Difficulty: normalizeDifficulty(in.Difficulty),
	}
	if err := s.db.Create(&trick).Error; err != nil {
		return nil, err
	}
	return &trick, nil
}

// Delete removes the trick if it exists and belongs to userID;
// otherwise ErrNotFound, with no distinction between the two cases.
func (s *TrickService) Delete(userID, trickID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", trickID, userID).Delete(&models.Trick{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
