package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/models"
	"github.com/jaseerashabeer/smart-habit-tracker/utils"

	"gorm.io/gorm"
)

// ErrNoReportData means the trailing window held no entries to report on.
var ErrNoReportData = errors.New("no entries in report window")

type ReportService struct {
	db        *gorm.DB
	analytics *AnalyticsService
}

func NewReportService(db *gorm.DB, analytics *AnalyticsService) *ReportService {
	return &ReportService{db: db, analytics: analytics}
}

// SendWeeklyReport emails the user a plain-text summary of the trailing
// 7 days: best day, averages and suggestions.
func (s *ReportService) SendWeeklyReport(ctx context.Context, userID uint) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return err
	}

	now := time.Now()
	sum, err := s.analytics.Summary(ctx, userID, now.AddDate(0, 0, -6), now)
	if err != nil {
		return err
	}
	if sum == nil {
		return ErrNoReportData
	}

	return utils.SendWeeklyReportEmail(user.Email, formatWeeklyReport(sum))
}

func formatWeeklyReport(sum *HabitSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Weekly habit report (%s to %s)\n\n", sum.Range.From, sum.Range.To)
	fmt.Fprintf(&sb, "Best day (by composite score): %s\n\n", sum.BestDay)

	sb.WriteString("Averages:\n")
	fmt.Fprintf(&sb, "  Sleep:        %.1f h\n", sum.Averages.Sleep)
	fmt.Fprintf(&sb, "  Healthy food: %.1f portions\n", sum.Averages.HealthyFood)
	fmt.Fprintf(&sb, "  Junk food:    %.1f items\n", sum.Averages.JunkFood)
	fmt.Fprintf(&sb, "  Exercise:     %.1f min\n", sum.Averages.Exercise)
	fmt.Fprintf(&sb, "  Water:        %.1f glasses\n", sum.Averages.Water)
	fmt.Fprintf(&sb, "  Reading:      %.1f min\n", sum.Averages.Reading)

	sb.WriteString("\nSuggestions:\n")
	for _, tip := range sum.Suggestions {
		fmt.Fprintf(&sb, "  - %s\n", tip)
	}

	if len(sum.Alerts) > 0 {
		sb.WriteString("\nAlerts:\n")
		for _, a := range sum.Alerts {
			fmt.Fprintf(&sb, "  ! %s\n", a)
		}
	}
	return sb.String()
}
