package store

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mavericks/backend/models"
)

// ActivityRow is the persisted form of an activity event. Seq gives the
// global insertion order; the payload is a kind-tagged JSON column.
type ActivityRow struct {
	Seq          uint           `gorm:"primaryKey;autoIncrement"`
	EventID      string         `gorm:"uniqueIndex;type:varchar(36)"`
	UserID       string         `gorm:"index;type:varchar(64)"`
	ActivityType string         `gorm:"type:varchar(64)"`
	Timestamp    time.Time      `gorm:"index"`
	Payload      datatypes.JSON `gorm:"type:json"`
}

func (ActivityRow) TableName() string {
	return "activity_events"
}

// GormStore persists the activity log through GORM. It exists to prove
// the store abstraction against a real database; the analytics code never
// sees it.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&ActivityRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Append(event models.ActivityEvent) error {
	payload, err := encodePayload(event.Payload)
	if err != nil {
		return err
	}

	row := ActivityRow{
		EventID:      event.ID,
		UserID:       event.UserID,
		ActivityType: string(event.Type),
		Timestamp:    event.Timestamp,
		Payload:      payload,
	}
	return s.db.Create(&row).Error
}

func (s *GormStore) UserEvents(userID string) ([]models.ActivityEvent, error) {
	var rows []ActivityRow
	if err := s.db.Where("user_id = ?", userID).Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToEvents(rows)
}

func (s *GormStore) AllEvents() ([]models.ActivityEvent, error) {
	var rows []ActivityRow
	if err := s.db.Order("seq").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToEvents(rows)
}

func (s *GormStore) UserIDs() ([]string, error) {
	var ids []string
	err := s.db.Model(&ActivityRow{}).Distinct("user_id").Order("user_id").Pluck("user_id", &ids).Error
	return ids, err
}

func rowsToEvents(rows []ActivityRow) ([]models.ActivityEvent, error) {
	events := make([]models.ActivityEvent, 0, len(rows))
	for _, row := range rows {
		payload, err := decodePayload(row.Payload)
		if err != nil {
			return nil, err
		}
		events = append(events, models.ActivityEvent{
			ID:        row.EventID,
			UserID:    row.UserID,
			Type:      models.ActivityType(row.ActivityType),
			Timestamp: row.Timestamp.UTC(),
			Payload:   payload,
		})
	}
	return events, nil
}
