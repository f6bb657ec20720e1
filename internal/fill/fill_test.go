package fill

import (
	"testing"
	"time"

	"habitcli/internal/tracker"
	"habitcli/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_SeedsSampleHabits(t *testing.T) {
	tr := tracker.New(types.NewDocument())
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	require.NoError(t, New(42).Apply(tr, now))

	doc := tr.Document()
	assert.Len(t, doc.Habits, len(SampleHabits))
	for _, sample := range SampleHabits {
		habit, ok := doc.Habits[sample.Name]
		require.True(t, ok, "missing %s", sample.Name)
		assert.Equal(t, sample.Periodicity, habit.Periodicity)
	}
}

func TestApply_CheckInsStayInWindow(t *testing.T) {
	tr := tracker.New(types.NewDocument())
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	require.NoError(t, New(7).Apply(tr, now))

	earliest := now.AddDate(0, 0, -15)
	for name, log := range tr.Document().Logs {
		for _, ts := range log {
			assert.False(t, ts.After(now), "%s has a future check-in", name)
			assert.False(t, ts.Before(earliest), "%s has a check-in older than 15 days", name)
		}
	}
}

func TestApply_Deterministic(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	trA := tracker.New(types.NewDocument())
	trB := tracker.New(types.NewDocument())
	require.NoError(t, New(99).Apply(trA, now))
	require.NoError(t, New(99).Apply(trB, now))

	assert.Equal(t, trA.Document().Logs, trB.Document().Logs)
}

func TestApply_KeepsExistingHabits(t *testing.T) {
	tr := tracker.New(types.NewDocument())
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	created := now.AddDate(0, -1, 0)
	require.NoError(t, tr.Add("Meditation", types.Daily, created))
	require.NoError(t, tr.Add("Workout", types.Daily, created))

	require.NoError(t, New(3).Apply(tr, now))

	doc := tr.Document()
	// Pre-existing records keep their CreatedAt; fill never rewrites them.
	assert.Equal(t, created, doc.Habits["Workout"].CreatedAt)
	// The user's own habit participates in the scatter pass.
	_, ok := doc.Habits["Meditation"]
	assert.True(t, ok)
	assert.Len(t, doc.Habits, len(SampleHabits)+1)
}
