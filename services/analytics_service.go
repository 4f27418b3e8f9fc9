package services

import (
	"context"
	"math"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/models"
	"github.com/jaseerashabeer/smart-habit-tracker/wellness"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	db      *gorm.DB
	entries *EntryService
}

func NewAnalyticsService(db *gorm.DB, entries *EntryService) *AnalyticsService {
	return &AnalyticsService{db: db, entries: entries}
}

// ---------- Summary ----------

type ScorePoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

type CustomHabitAvg struct {
	Average float64 `json:"average"`
	Cap     float64 `json:"cap,omitempty"`
	Days    int     `json:"days"`
}

type HabitSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	BestDay  string            `json:"best_day"`
	Averages wellness.Averages `json:"averages"`
	Scores   []ScorePoint      `json:"scores"`

	Suggestions []string `json:"suggestions"`
	Alerts      []string `json:"alerts"`
	Insights    []string `json:"insights,omitempty"`

	CustomHabits map[string]CustomHabitAvg `json:"custom_habits,omitempty"`

	Metadata struct {
		EntriesCounted int `json:"entries_counted"`
	} `json:"metadata"`
}

// Summary analyzes the user's entries in [from,to]. Returns (nil, nil)
// when the window holds no entries; that is the normal "not enough data"
// outcome, not an error.
func (s *AnalyticsService) Summary(
	ctx context.Context, userID uint, from, to time.Time,
) (*HabitSummary, error) {

	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	recs := ToRecords(entries)
	sum := wellness.Analyze(recs)
	if sum == nil {
		return nil, nil
	}

	out := &HabitSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")
	out.BestDay = sum.BestDay.Format("2006-01-02")
	out.Averages = sum.Averages
	out.Metadata.EntriesCounted = len(entries)

	out.Scores = make([]ScorePoint, 0, len(sum.Scores))
	for _, ds := range sum.Scores {
		out.Scores = append(out.Scores, ScorePoint{
			Date:  ds.Date.Format("2006-01-02"),
			Score: round2(ds.Score),
		})
	}

	out.Suggestions = wellness.Suggestions(sum.Averages)
	out.Alerts = wellness.Alerts(sum.Averages)
	out.Insights = wellness.Insights(sum.Averages)

	custom, err := s.customHabitAverages(ctx, userID, recs)
	if err != nil {
		return nil, err
	}
	out.CustomHabits = custom

	return out, nil
}

// EvaluateAlerts recomputes the trailing-window averages and fans every
// firing threshold out through the alert bus (persist + websocket + push).
// Returns the emitted messages; empty when nothing fired or no data exists.
func (s *AnalyticsService) EvaluateAlerts(ctx context.Context, userID uint, from, to time.Time) ([]string, error) {
	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	sum := wellness.Analyze(ToRecords(entries))
	if sum == nil {
		return []string{}, nil
	}

	alerts := wellness.Alerts(sum.Averages)
	for _, msg := range alerts {
		EmitAlert(userID, "warning", msg)
	}
	return alerts, nil
}

// customHabitAverages attaches each logged custom habit's window average to
// its definition (cap is display-only context, never scored).
func (s *AnalyticsService) customHabitAverages(
	ctx context.Context, userID uint, recs []wellness.Record,
) (map[string]CustomHabitAvg, error) {

	avgs := wellness.CustomAverages(recs)
	if len(avgs) == 0 {
		return nil, nil
	}

	var defs []models.CustomHabit
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&defs).Error; err != nil {
		return nil, err
	}
	caps := make(map[string]float64, len(defs))
	for _, d := range defs {
		caps[d.Name] = d.Cap
	}

	counts := map[string]int{}
	for _, r := range recs {
		for name := range r.Custom {
			counts[name]++
		}
	}

	out := make(map[string]CustomHabitAvg, len(avgs))
	for name, avg := range avgs {
		out[name] = CustomHabitAvg{
			Average: round2(avg),
			Cap:     caps[name],
			Days:    counts[name],
		}
	}
	return out, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
