package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goodWeek = Averages{Sleep: 8, Water: 8, Exercise: 30, HealthyFood: 4, JunkFood: 0, Reading: 20}

func TestSuggestionsNeverEmpty(t *testing.T) {
	got := Suggestions(goodWeek)
	require.Len(t, got, 1)
	assert.Equal(t, "Great week! Keep up the balanced habits.", got[0])
}

func TestSuggestionsAllFireInOrder(t *testing.T) {
	bad := Averages{Sleep: 4, Water: 2, Exercise: 5, HealthyFood: 1, JunkFood: 3, Reading: 5}
	got := Suggestions(bad)
	require.Len(t, got, 6)
	// fixed rule order: sleep, water, exercise, healthy food, junk food, reading
	assert.Contains(t, got[0], "sleep")
	assert.Contains(t, got[1], "water")
	assert.Contains(t, got[2], "movement")
	assert.Contains(t, got[3], "healthy food")
	assert.Contains(t, got[4], "junk food")
	assert.Contains(t, got[5], "reading")
}

func TestSuggestionsRulesIndependent(t *testing.T) {
	avg := goodWeek
	avg.Water = 5.9
	avg.Reading = 14
	got := Suggestions(avg)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "water")
	assert.Contains(t, got[1], "reading")
}

func TestSuggestionsThresholdBoundaries(t *testing.T) {
	// thresholds are strict inequalities
	edge := Averages{Sleep: 6, Water: 6, Exercise: 20, HealthyFood: 3, JunkFood: 1, Reading: 15}
	got := Suggestions(edge)
	require.Len(t, got, 1)
	assert.Equal(t, "Great week! Keep up the balanced habits.", got[0])
}

func TestAlertsEmptyForGoodWeek(t *testing.T) {
	assert.Empty(t, Alerts(goodWeek))
}

func TestAlertsAllFireInOrder(t *testing.T) {
	bad := Averages{Sleep: 5, Water: 4, Exercise: 10, HealthyFood: 4, JunkFood: 0, Reading: 20}
	got := Alerts(bad)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "water")
	assert.Contains(t, got[1], "sleep")
	assert.Contains(t, got[2], "exercise")
}

func TestAlertsStricterThanSuggestions(t *testing.T) {
	// water 5.5 triggers a suggestion (<6) but not an alert (<5)
	avg := goodWeek
	avg.Water = 5.5
	assert.NotEmpty(t, Suggestions(avg))
	assert.Empty(t, Alerts(avg))
}

func TestAlertsTotalOverWildInput(t *testing.T) {
	// no clamping: any real-valued averages are accepted
	assert.Len(t, Alerts(Averages{Sleep: -10, Water: -1, Exercise: -5}), 3)
	assert.Empty(t, Alerts(Averages{Sleep: 1e9, Water: 1e9, Exercise: 1e9}))
}

func TestInsights(t *testing.T) {
	assert.Empty(t, Insights(goodWeek))

	avg := goodWeek
	avg.JunkFood = 2.5
	avg.Reading = 30
	got := Insights(avg)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "junk food")
	assert.Contains(t, got[1], "reading")
}
