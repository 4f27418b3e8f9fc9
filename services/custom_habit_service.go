package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jaseerashabeer/smart-habit-tracker/models"

	"gorm.io/gorm"
)

type CustomHabitService struct{ db *gorm.DB }

func NewCustomHabitService(db *gorm.DB) *CustomHabitService {
	return &CustomHabitService{db: db}
}

// Upsert creates or updates a habit definition keyed by (user, name).
func (s *CustomHabitService) Upsert(ctx context.Context, userID uint, name string, cap float64) (*models.CustomHabit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("habit name required")
	}
	if cap <= 0 {
		return nil, errors.New("cap must be positive")
	}

	var habit models.CustomHabit
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&habit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		habit = models.CustomHabit{UserID: userID, Name: name, Cap: cap}
		if err := s.db.WithContext(ctx).Create(&habit).Error; err != nil {
			return nil, err
		}
		return &habit, nil
	}
	if err != nil {
		return nil, err
	}

	habit.Cap = cap
	if err := s.db.WithContext(ctx).Save(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (s *CustomHabitService) List(ctx context.Context, userID uint) ([]models.CustomHabit, error) {
	var habits []models.CustomHabit
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&habits).Error
	return habits, err
}
