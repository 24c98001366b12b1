package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chunponglai/tricks-planner/models"
)

// SyncPayload is the client's whole offline dataset. Only the top-level
// shape is validated; the records themselves are client-defined and
// stored verbatim.
type SyncPayload struct {
	Categories    []string          `json:"categories"`
	Tricks        []json.RawMessage `json:"tricks"`
	Templates     []json.RawMessage `json:"templates"`
	Challenges    []json.RawMessage `json:"challenges"`
	TrainingPlans []json.RawMessage `json:"trainingPlans"`
}

// EmptySyncPayload serializes with empty arrays rather than nulls.
func EmptySyncPayload() *SyncPayload {
	return &SyncPayload{
		Categories:    []string{},
		Tricks:        []json.RawMessage{},
		Templates:     []json.RawMessage{},
		Challenges:    []json.RawMessage{},
		TrainingPlans: []json.RawMessage{},
	}
}

type SyncService struct {
	db *gorm.DB
}

func NewSyncService(db *gorm.DB) *SyncService {
	return &SyncService{db: db}
}

// Pull returns the user's stored document, or the empty default when
// the user has never pushed.
func (s *SyncService) Pull(userID uint) (*SyncPayload, error) {
	var row models.UserData
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return EmptySyncPayload(), nil
	}
	if err != nil {
		return nil, err
	}

	payload := EmptySyncPayload()
	if err := json.Unmarshal([]byte(row.DataJSON), payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Push replaces the stored document wholesale: last writer wins, no
// merge, no versioning. The upsert is a single atomic statement so
// concurrent pushes can't interleave into a corrupted document.
func (s *SyncService) Push(userID uint, payload *SyncPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	row := models.UserData{
		UserID:    userID,
		DataJSON:  string(raw),
		UpdatedAt: time.Now().UTC(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data_json", "updated_at"}),
	}).Create(&row).Error
}
