package models

import "time"

// TrainingTemplate is a reusable named set of practice items. Items live
// and die with their template.
type TrainingTemplate struct {
	ID        uint                   `gorm:"primaryKey" json:"id"`
	UserID    uint                   `gorm:"index;not null" json:"-"`
	Name      string                 `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time              `json:"created_at"`
	Items     []TrainingTemplateItem `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"items"`
}

type TrainingTemplateItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TemplateID  uint   `gorm:"index;not null" json:"-"`
	TrickName   string `gorm:"size:255;not null" json:"trick_name"`
	Category    string `gorm:"size:255" json:"category"`
	Difficulty  string `gorm:"size:32;default:none" json:"difficulty"`
	TargetCount int    `json:"target_count"`
}
