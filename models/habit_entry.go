package models

import (
	"time"

	"gorm.io/gorm"
)

// HabitEntry is one saved daily entry. Entries are append-only: a correction
// is a new row for the same date, and duplicate dates are kept as separate
// rows (analysis averages across whatever rows fall in the window).
type HabitEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to local midnight

	Sleep       float64 // hours
	HealthyFood float64 // portions
	JunkFood    float64 // items
	Exercise    float64 // minutes
	Water       float64 // glasses
	Reading     float64 // minutes

	Customs []CustomHabitValue `gorm:"foreignKey:EntryID"`
}

// CustomHabitValue stores one custom habit's value for one entry. A habit
// with no row for an entry is missing for that day, not zero.
type CustomHabitValue struct {
	gorm.Model
	EntryID uint   `gorm:"index;not null"`
	Name    string `gorm:"size:64;not null"`
	Value   float64
}
