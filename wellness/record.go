// Package wellness is the analytics core of the habit tracker: composite
// day scoring, windowed aggregation and threshold-driven advice. Everything
// here is a pure function of its inputs; callers hand in whatever window of
// records they want analyzed and the package never touches storage.
package wellness

import "time"

// Record is one day's habit entry as seen by the analytics core. The six
// fixed metrics are always present (the storage layer defaults them to 0);
// Custom holds user-defined habits and is keyed only for days where the
// user actually logged that habit.
type Record struct {
	Date        time.Time
	Sleep       float64 // hours
	HealthyFood float64 // portions
	JunkFood    float64 // items
	Exercise    float64 // minutes
	Water       float64 // glasses
	Reading     float64 // minutes

	Custom map[string]float64
}

// Averages holds the arithmetic mean of each fixed metric over a window.
// Custom habits are aggregated separately and never appear here.
type Averages struct {
	Sleep       float64 `json:"sleep"`
	HealthyFood float64 `json:"healthy_food"`
	JunkFood    float64 `json:"junk_food"`
	Exercise    float64 `json:"exercise"`
	Water       float64 `json:"water"`
	Reading     float64 `json:"reading"`
}

// DayScore pairs a record's date with its composite score.
type DayScore struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// WeekSummary is the result of analyzing a window of records. Despite the
// name it is window-size agnostic; "week" is just the typical caller choice.
type WeekSummary struct {
	BestDay  time.Time  `json:"best_day"`
	Averages Averages   `json:"averages"`
	Scores   []DayScore `json:"scores"`
}
