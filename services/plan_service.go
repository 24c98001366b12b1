package services

import (
	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/models"
)

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

type TrainingItemInput struct {
	TrickName      string `json:"trick_name" binding:"required"`
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	TargetCount    int    `json:"target_count"`
	CompletedCount int    `json:"completed_count"`
	TemplateID     *uint  `json:"template_id"`
}

type PlanInput struct {
	Day   string              `json:"day" binding:"required,datetime=2006-01-02"`
	Items []TrainingItemInput `json:"items"`
}

func (s *PlanService) List(userID uint) ([]models.DailyTrainingPlan, error) {
	plans := make([]models.DailyTrainingPlan, 0)
	err := s.db.Preload("Items").Where("user_id = ?", userID).Find(&plans).Error
	return plans, err
}

// Create persists the plan and its items atomically, same contract as
// template creation.
func (s *PlanService) Create(userID uint, in PlanInput) (*models.DailyTrainingPlan, error) {
	plan := models.DailyTrainingPlan{UserID: userID, Day: in.Day}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for _, it := range in.Items {
			item := models.TrainingItem{
				PlanID:         plan.ID,
				TrickName:      it.TrickName,
				Category:       it.Category,
				Difficulty:     normalizeDifficulty(it.Difficulty),
				TargetCount:    it.TargetCount,
				CompletedCount: it.CompletedCount,
				TemplateID:     it.TemplateID,
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

	var out models.DailyTrainingPlan
	if err := s.db.Preload("Items").First(&out, plan.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
