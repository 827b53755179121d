package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fms/entities"
)

func day(offset int) time.Time {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func testCycle() *entities.GrowthCycle {
	return &entities.GrowthCycle{
		GerminationDays: 7,
		VegetativeDays:  21,
		FloweringDays:   14,
		FruitingDays:    18,
		TotalGrowthDays: 60,
	}
}

func TestComputeNilCycle(t *testing.T) {
	assert.Nil(t, Compute(nil, day(0), day(10)))
}

func TestComputeStageBoundaries(t *testing.T) {
	c := testCycle()
	cases := []struct {
		days  int
		stage string
	}{
		{0, StageGermination},
		{7, StageGermination},  // inclusive upper bound
		{8, StageVegetative},   // first day past germination
		{28, StageVegetative},  // 7+21
		{29, StageFlowering},
		{42, StageFlowering}, // 7+21+14
		{43, StageFruiting},
		{60, StageFruiting},
		{500, StageFruiting}, // fruiting is terminal, past harvest too
	}
	for _, tc := range cases {
		st := Compute(c, day(0), day(tc.days))
		require.NotNil(t, st)
		assert.Equal(t, tc.stage, st.Stage, "days=%d", tc.days)
		assert.Equal(t, tc.days, st.DaysSince)
	}
}

func TestComputeStageMonotonic(t *testing.T) {
	c := testCycle()
	rank := map[string]int{
		StageGermination: 0,
		StageVegetative:  1,
		StageFlowering:   2,
		StageFruiting:    3,
	}
	prev := -1
	for d := 0; d <= 120; d++ {
		st := Compute(c, day(0), day(d))
		r, ok := rank[st.Stage]
		require.True(t, ok, "unknown stage %q", st.Stage)
		assert.GreaterOrEqual(t, r, prev, "stage regressed at day %d", d)
		prev = r
	}
}

func TestComputeExpectedHarvest(t *testing.T) {
	c := testCycle()
	st := Compute(c, day(0), day(10))
	require.NotNil(t, st)
	assert.Equal(t, day(60), st.ExpectedHarvest)

	// independent of stage sums
	c.TotalGrowthDays = 90
	st = Compute(c, day(0), day(10))
	assert.Equal(t, day(90), st.ExpectedHarvest)
}

func TestComputeFuturePlantingTolerated(t *testing.T) {
	c := testCycle()
	st := Compute(c, day(5), day(0))
	require.NotNil(t, st)
	assert.Equal(t, -5, st.DaysSince)
	assert.Equal(t, StageGermination, st.Stage)
}
