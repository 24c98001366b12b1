package models

// DailyTrainingPlan is the concrete set of items a user intends to
// practice on one day, optionally instantiated from a template.
type DailyTrainingPlan struct {
	ID     uint           `gorm:"primaryKey" json:"id"`
	UserID uint           `gorm:"index;not null" json:"-"`
	Day    string         `gorm:"size:10;index;not null" json:"day"`
	Items  []TrainingItem `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"items"`
}

func (DailyTrainingPlan) TableName() string { return "training_plans" }

type TrainingItem struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PlanID         uint   `gorm:"index;not null" json:"-"`
	TrickName      string `gorm:"size:255;not null" json:"trick_name"`
	Category       string `gorm:"size:255" json:"category"`
	Difficulty     string `gorm:"size:32;default:none" json:"difficulty"`
	TargetCount    int    `json:"target_count"`
	CompletedCount int    `gorm:"default:0" json:"completed_count"`
	// TemplateID records which template the item came from, if any.
	// Informational only, not a foreign key.
	TemplateID *uint `json:"template_id"`
}
