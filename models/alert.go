package models

import "time"

// Alert is a persisted low-performance warning raised by the analytics
// threshold rules.
type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Type      string `gorm:"size:20"` // "warning" | "info"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
