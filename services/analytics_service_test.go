package services

import (
	"context"
	"testing"

	"github.com/jaseerashabeer/smart-habit-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsSummaryNoData(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db, NewEntryService(db))

	sum, err := svc.Summary(context.Background(), 1, testDay(1), testDay(7))
	require.NoError(t, err)
	// no entries is a normal outcome, not an error
	assert.Nil(t, sum)
}

func TestAnalyticsSummary(t *testing.T) {
	db := newTestDB(t)
	entries := NewEntryService(db)
	svc := NewAnalyticsService(db, entries)
	ctx := context.Background()

	seed := []EntryInput{
		{Date: testDay(1), Sleep: 4, Water: 3, Exercise: 10, HealthyFood: 1, JunkFood: 3, Reading: 5},
		{Date: testDay(2), Sleep: 8, Water: 8, Exercise: 45, HealthyFood: 4, JunkFood: 0, Reading: 30},
		{Date: testDay(3), Sleep: 7, Water: 7, Exercise: 25, HealthyFood: 3, JunkFood: 1, Reading: 10,
			Custom: map[string]float64{"meditation": 15}},
	}
	_, err := entries.BulkImport(ctx, 1, seed)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.CustomHabit{UserID: 1, Name: "meditation", Cap: 30}).Error)

	sum, err := svc.Summary(ctx, 1, testDay(1), testDay(7))
	require.NoError(t, err)
	require.NotNil(t, sum)

	assert.Equal(t, "2025-06-02", sum.BestDay)
	assert.Equal(t, 3, sum.Metadata.EntriesCounted)
	assert.Equal(t, (4.0+8.0+7.0)/3, sum.Averages.Sleep)

	require.Len(t, sum.Scores, 3)
	assert.Equal(t, "2025-06-01", sum.Scores[0].Date)
	assert.Equal(t, "2025-06-03", sum.Scores[2].Date)

	assert.NotEmpty(t, sum.Suggestions)
	assert.Empty(t, sum.Alerts)

	require.Contains(t, sum.CustomHabits, "meditation")
	assert.Equal(t, 15.0, sum.CustomHabits["meditation"].Average)
	assert.Equal(t, 30.0, sum.CustomHabits["meditation"].Cap)
	assert.Equal(t, 1, sum.CustomHabits["meditation"].Days)
}

func TestAnalyticsEvaluateAlerts(t *testing.T) {
	db := newTestDB(t)
	entries := NewEntryService(db)
	svc := NewAnalyticsService(db, entries)
	ctx := context.Background()

	InitAlertDeps(db, nil, nil)
	t.Cleanup(func() { InitAlertDeps(nil, nil, nil) })

	_, err := entries.Add(ctx, 1, EntryInput{Date: testDay(1), Sleep: 5, Water: 4, Exercise: 10})
	require.NoError(t, err)

	msgs, err := svc.EvaluateAlerts(ctx, 1, testDay(1), testDay(7))
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	var stored []models.Alert
	require.NoError(t, db.Where("user_id = ?", 1).Order("id ASC").Find(&stored).Error)
	require.Len(t, stored, 3)
	assert.Equal(t, "warning", stored[0].Type)
	assert.Contains(t, stored[0].Message, "water")
	assert.Contains(t, stored[1].Message, "sleep")
	assert.Contains(t, stored[2].Message, "exercise")
}

func TestAnalyticsEvaluateAlertsNoData(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db, NewEntryService(db))

	msgs, err := svc.EvaluateAlerts(context.Background(), 1, testDay(1), testDay(7))
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
