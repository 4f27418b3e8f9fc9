package models

import (
	"gorm.io/gorm"
)

// CustomHabit is a per-user habit definition. Cap is the ideal value the
// dashboard uses to put the habit in context; the composite score never
// consults it (only the six fixed metrics are scored).
type CustomHabit struct {
	gorm.Model
	UserID uint    `gorm:"index;not null"`
	Name   string  `gorm:"size:64;not null"`
	Cap    float64 // e.g. 30 for minutes of meditation
}
