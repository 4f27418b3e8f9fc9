package wellness

import "sort"

// Analyze reduces a window of records to a summary: the best-scoring day,
// per-metric averages and the full score series sorted by date. Returns nil
// when the window is empty ("not enough data", a normal outcome).
//
// The best day is the first record reaching the maximum score, in input
// order. Records sharing a date are kept as separate rows everywhere: they
// each appear in the score series and each count toward the averages.
func Analyze(recs []Record) *WeekSummary {
	if len(recs) == 0 {
		return nil
	}

	scores := make([]DayScore, len(recs))
	best := 0
	for i, r := range recs {
		scores[i] = DayScore{Date: r.Date, Score: CompositeScore(r)}
		if scores[i].Score > scores[best].Score {
			best = i
		}
	}
	bestDay := recs[best].Date

	var sum Averages
	for _, r := range recs {
		sum.Sleep += r.Sleep
		sum.HealthyFood += r.HealthyFood
		sum.JunkFood += r.JunkFood
		sum.Exercise += r.Exercise
		sum.Water += r.Water
		sum.Reading += r.Reading
	}
	n := float64(len(recs))
	avg := Averages{
		Sleep:       sum.Sleep / n,
		HealthyFood: sum.HealthyFood / n,
		JunkFood:    sum.JunkFood / n,
		Exercise:    sum.Exercise / n,
		Water:       sum.Water / n,
		Reading:     sum.Reading / n,
	}

	// stable: same-date rows keep their input order
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Date.Before(scores[j].Date)
	})

	return &WeekSummary{BestDay: bestDay, Averages: avg, Scores: scores}
}

// CustomAverages computes per-habit means over the rows where each habit was
// actually logged; days without a value are missing, not zero. The map keys
// are whatever habit names appear in the window.
func CustomAverages(recs []Record) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range recs {
		for name, v := range r.Custom {
			sums[name] += v
			counts[name]++
		}
	}
	if len(sums) == 0 {
		return nil
	}
	out := make(map[string]float64, len(sums))
	for name, s := range sums {
		out[name] = s / float64(counts[name])
	}
	return out
}
