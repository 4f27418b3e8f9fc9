package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeScoreBounds(t *testing.T) {
	cases := []Record{
		{},
		{Sleep: 9, HealthyFood: 5, JunkFood: 0, Exercise: 60, Water: 8, Reading: 60},
		{Sleep: 4.5, HealthyFood: 2, JunkFood: 3, Exercise: 15, Water: 3, Reading: 10},
		{Sleep: 100, HealthyFood: 100, JunkFood: 100, Exercise: 100, Water: 100, Reading: 100},
		{Sleep: 0.5, JunkFood: 5},
	}
	for _, rec := range cases {
		got := CompositeScore(rec)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestCompositeScoreExactWeighting(t *testing.T) {
	rec := Record{Sleep: 4.5, HealthyFood: 2, JunkFood: 3, Exercise: 15, Water: 3, Reading: 10}
	want := 0.18*(4.5/9.0) + 0.18*(2.0/5.0) + 0.12*(1-3.0/5.0) +
		0.20*(15.0/60.0) + 0.16*(3.0/8.0) + 0.16*(10.0/60.0)
	require.Equal(t, want, CompositeScore(rec))
}

func TestCompositeScorePerfectDay(t *testing.T) {
	rec := Record{Sleep: 9, HealthyFood: 5, JunkFood: 0, Exercise: 60, Water: 8, Reading: 60}
	require.InDelta(t, 1.0, CompositeScore(rec), 1e-12)
}

func TestCompositeScoreZeroDay(t *testing.T) {
	// All zeros: only the junk food term contributes (zero junk = full 0.12).
	require.InDelta(t, 0.12, CompositeScore(Record{}), 1e-12)
}

func TestCompositeScoreMonotonicity(t *testing.T) {
	base := Record{Sleep: 6, HealthyFood: 3, JunkFood: 2, Exercise: 30, Water: 4, Reading: 20}
	baseScore := CompositeScore(base)

	bump := func(mut func(*Record)) float64 {
		r := base
		mut(&r)
		return CompositeScore(r)
	}

	assert.Greater(t, bump(func(r *Record) { r.Sleep += 1 }), baseScore, "sleep")
	assert.Greater(t, bump(func(r *Record) { r.HealthyFood += 1 }), baseScore, "healthy food")
	assert.Greater(t, bump(func(r *Record) { r.Exercise += 10 }), baseScore, "exercise")
	assert.Greater(t, bump(func(r *Record) { r.Water += 1 }), baseScore, "water")
	assert.Greater(t, bump(func(r *Record) { r.Reading += 10 }), baseScore, "reading")
	assert.Less(t, bump(func(r *Record) { r.JunkFood += 1 }), baseScore, "junk food")
}

func TestCompositeScoreCapSaturation(t *testing.T) {
	// At or above the cap a metric contributes exactly its full weight;
	// junk food at the cap contributes zero.
	atCap := Record{Sleep: 9, HealthyFood: 5, JunkFood: 5, Exercise: 60, Water: 8, Reading: 60}
	overCap := Record{Sleep: 14, HealthyFood: 12, JunkFood: 20, Exercise: 300, Water: 20, Reading: 600}
	require.Equal(t, CompositeScore(atCap), CompositeScore(overCap))
	require.InDelta(t, 0.18+0.18+0+0.20+0.16+0.16, CompositeScore(atCap), 1e-12)
}

func TestCompositeScoreIgnoresCustomHabits(t *testing.T) {
	plain := Record{Sleep: 7, HealthyFood: 3, Exercise: 30, Water: 6, Reading: 20}
	withCustom := plain
	withCustom.Custom = map[string]float64{"meditation": 45, "guitar": 15}
	require.Equal(t, CompositeScore(plain), CompositeScore(withCustom))
}
