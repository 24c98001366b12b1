package models

// ChallengeStatusNotDone is the initial status for a new challenge.
const ChallengeStatusNotDone = "notDone"

// Challenge is a generated trick combo assigned to a calendar day. The
// combo itself is an opaque client-defined JSON document.
type Challenge struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"-"`
	Day       string `gorm:"size:10;not null" json:"day"`
	Status    string `gorm:"size:16;default:notDone" json:"status"`
	ComboJSON string `gorm:"type:text" json:"combo_json"`
}
