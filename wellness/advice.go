package wellness

// Rule thresholds for the advisory engine. Suggestions and alerts are two
// independent tables: alerts are stricter and cover fewer metrics.

// Suggestions evaluates the coaching rule table against window averages and
// returns the matching tips in a fixed order. Never returns an empty list:
// when all rules pass, a single positive-reinforcement message comes back.
func Suggestions(avg Averages) []string {
	tips := []string{}
	if avg.Sleep < 6 {
		tips = append(tips, "Try to increase sleep (aim for 7-9 hours). Consider a consistent bedtime.")
	}
	if avg.Water < 6 {
		tips = append(tips, "Drink more water - target ~8 glasses daily. Set small reminders.")
	}
	if avg.Exercise < 20 {
		tips = append(tips, "Add more movement - even 20-30 min of brisk walk helps.")
	}
	if avg.HealthyFood < 3 {
		tips = append(tips, "Increase healthy food portions (fruits/veggies).")
	}
	if avg.JunkFood > 1 {
		tips = append(tips, "Reduce junk food frequency; swap one snack for fruit.")
	}
	if avg.Reading < 15 {
		tips = append(tips, "Try a short daily reading habit - 10-20 minutes.")
	}
	if len(tips) == 0 {
		tips = append(tips, "Great week! Keep up the balanced habits.")
	}
	return tips
}

// Alerts evaluates the low-performance thresholds. Unlike Suggestions the
// result may be empty; callers treat an empty list as "nothing to raise".
func Alerts(avg Averages) []string {
	alerts := []string{}
	if avg.Water < 5 {
		alerts = append(alerts, "Low average water intake - consider setting water reminders.")
	}
	if avg.Sleep < 6 {
		alerts = append(alerts, "Low average sleep - consistent schedule may help.")
	}
	if avg.Exercise < 15 {
		alerts = append(alerts, "Low average exercise minutes.")
	}
	return alerts
}

// Insights returns the quick auto-generated observations shown alongside the
// summary. May be empty.
func Insights(avg Averages) []string {
	notes := []string{}
	if avg.JunkFood > 2 {
		notes = append(notes, "You've eaten junk food more than 2 times/day on average - try healthier swaps on 1-2 days.")
	}
	if avg.Reading >= 30 {
		notes = append(notes, "Nice reading habit - you're averaging >=30 minutes per day!")
	}
	return notes
}
