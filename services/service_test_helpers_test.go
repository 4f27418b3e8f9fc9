package services

import (
	"testing"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.HabitEntry{},
		&models.CustomHabitValue{},
		&models.CustomHabit{},
		&models.Alert{},
		&models.UserDevice{},
	))
	return db
}

func testDay(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}
