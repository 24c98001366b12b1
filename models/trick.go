package models

import "time"

// DifficultyNone is the sentinel stored when a client omits difficulty.
// Difficulties are free-form strings at this layer, not a closed enum.
const DifficultyNone = "none"

type Trick struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"-"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Category   string    `gorm:"size:255" json:"category"`
	Difficulty string    `gorm:"size:32;default:none" json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
}
