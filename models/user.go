package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	Tricks     []Trick             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Templates  []TrainingTemplate  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Challenges []Challenge         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Plans      []DailyTrainingPlan `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DataBlob   *UserData           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
