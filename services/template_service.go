package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/models"
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

type TemplateItemInput struct {
	TrickName   string `json:"trick_name" binding:"required"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	TargetCount int    `json:"target_count"`
}

type TemplateInput struct {
	Name  string              `json:"name" binding:"required"`
	Items []TemplateItemInput `json:"items"`
}

func (s *TemplateService) List(userID uint) ([]models.TrainingTemplate, error) {
	templates := make([]models.TrainingTemplate, 0)
	err := s.db.Preload("Items").Where("user_id = ?", userID).Find(&templates).Error
	return templates, err
}

// Create persists the template and its items in one transaction. A
// failed item insert rolls everything back; no partial template is ever
// visible.
func (s *TemplateService) Create(userID uint, in TemplateInput) (*models.TrainingTemplate, error) {
	template := models.TrainingTemplate{UserID: userID, Name: in.Name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		for _, it := range in.Items {
			item := models.TrainingTemplateItem{
				TemplateID:  template.ID,
				TrickName:   it.TrickName,
				Category:    it.Category,
				Difficulty:  normalizeDifficulty(it.Difficulty),
				TargetCount: it.TargetCount,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var out models.TrainingTemplate
	if err := s.db.Preload("Items").First(&out, template.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete cascades to the template's items inside one transaction.
func (s *TemplateService) Delete(userID, templateID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var template models.TrainingTemplate
		err := tx.Where("id = ? AND user_id = ?", templateID, userID).First(&template).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("template_id = ?", template.ID).Delete(&models.TrainingTemplateItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&template).Error
	})
}
