package models

import "time"

// UserData holds a user's whole client-side dataset as one opaque JSON
// document for offline-first sync. At most one row per user; pushes
// replace the document wholesale.
type UserData struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"-"`
	DataJSON  string    `gorm:"type:text" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserData) TableName() string { return "user_data" }
