package tracker

import (
	"testing"
	"time"

	"habitcli/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	tr := newTestTracker(t)
	now := day(2024, time.March, 10)
	mustAdd(t, tr, "Workout", types.Daily, day(2024, time.March, 1))
	mustAdd(t, tr, "Grocery", types.Weekly, day(2024, time.March, 1))
	require.NoError(t, tr.Check("Workout", now))
	require.NoError(t, tr.Check("Workout", day(2024, time.March, 9)))

	report := tr.Summary(now)

	assert.Equal(t, 2, report.TotalHabits)
	assert.Equal(t, 2, report.TotalCheckIns)
	assert.Equal(t, []string{"Workout"}, report.DailyHabits)

	// Grocery has no check-ins, so it is both pending and struggling.
	require.Len(t, report.Pending, 1)
	assert.Equal(t, "Grocery", report.Pending[0].Name)
	require.Len(t, report.Struggling, 1)
	assert.Equal(t, types.StruggleEntry{Name: "Grocery", Count: 0}, report.Struggling[0])
}

func TestSummary_Empty(t *testing.T) {
	tr := newTestTracker(t)
	report := tr.Summary(day(2024, time.March, 10))

	assert.Zero(t, report.TotalHabits)
	assert.Zero(t, report.TotalCheckIns)
	assert.Empty(t, report.Pending)
	assert.Empty(t, report.Struggling)
	assert.Empty(t, report.DailyHabits)
}

func TestDetails(t *testing.T) {
	tr := newTestTracker(t)
	created := day(2024, time.March, 1)
	mustAdd(t, tr, "Workout", types.Daily, created)
	require.NoError(t, tr.Check("Workout", day(2024, time.March, 2)))
	require.NoError(t, tr.Check("Workout", day(2024, time.March, 3)))

	d, err := tr.Details("Workout")
	require.NoError(t, err)
	assert.Equal(t, "Workout", d.Name)
	assert.Equal(t, types.Daily, d.Periodicity)
	assert.Equal(t, created, d.CreatedAt)
	assert.Equal(t, 2, d.CheckIns)
	assert.Equal(t, day(2024, time.March, 3), d.LastCheckIn)
	assert.Equal(t, 2, d.Streak)
}

func TestDetails_NeverChecked(t *testing.T) {
	tr := newTestTracker(t)
	mustAdd(t, tr, "Workout", types.Daily, day(2024, time.March, 1))

	d, err := tr.Details("Workout")
	require.NoError(t, err)
	assert.Zero(t, d.CheckIns)
	assert.True(t, d.LastCheckIn.IsZero())
	assert.Zero(t, d.Streak)
}

func TestDetails_UnknownHabit(t *testing.T) {
	tr := newTestTracker(t)
	_, err := tr.Details("Nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
