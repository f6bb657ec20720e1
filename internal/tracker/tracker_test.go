package tracker

import (
	"testing"
	"time"

	"habitcli/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return New(types.NewDocument())
}

func mustAdd(t *testing.T, tr *Tracker, name string, p types.Periodicity, at time.Time) {
	t.Helper()
	require.NoError(t, tr.Add(name, p, at))
}

// day builds timestamps in UTC so whole-day gap arithmetic in tests does not
// depend on the host timezone's DST transitions.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 30, 0, 0, time.UTC)
}

func TestAdd(t *testing.T) {
	tr := newTestTracker(t)
	created := day(2024, time.March, 1)

	require.NoError(t, tr.Add("Workout", types.Daily, created))

	habit, ok := tr.Document().Habits["Workout"]
	require.True(t, ok)
	assert.Equal(t, types.Daily, habit.Periodicity)
	assert.Equal(t, created, habit.CreatedAt)
	assert.Empty(t, tr.Document().Logs["Workout"])
	assert.Equal(t, []string{"Workout"}, tr.Document().Names())
}

func TestAdd_DuplicateKeepsOriginal(t *testing.T) {
	tr := newTestTracker(t)
	created := day(2024, time.March, 1)
	mustAdd(t, tr, "Workout", types.Daily, created)

	err := tr.Add("Workout", types.Weekly, day(2024, time.April, 1))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Original record untouched, including CreatedAt.
	habit := tr.Document().Habits["Workout"]
	assert.Equal(t, types.Daily, habit.Periodicity)
	assert.Equal(t, created, habit.CreatedAt)
}

func TestAdd_InvalidArguments(t *testing.T) {
	tr := newTestTracker(t)

	assert.ErrorIs(t, tr.Add("", types.Daily, day(2024, time.March, 1)), ErrInvalidArgument)
	assert.ErrorIs(t, tr.Add("Workout", "", day(2024, time.March, 1)), ErrInvalidArgument)
	assert.ErrorIs(t, tr.Add("Workout", "monthly", day(2024, time.March, 1)), ErrInvalidArgument)
	assert.Empty(t, tr.Document().Habits)
}

func TestCheck(t *testing.T) {
	tr := newTestTracker(t)
	mustAdd(t, tr, "Workout", types.Daily, day(2024, time.March, 1))

	first := day(2024, time.March, 2)
	require.NoError(t, tr.Check("Workout", first))
	// Same-day check-ins are cumulative, never deduplicated.
	require.NoError(t, tr.Check("Workout", first.Add(2*time.Hour)))

	assert.Len(t, tr.Document().Logs["Workout"], 2)
}

func TestCheck_UnknownHabit(t *testing.T) {
	tr := newTestTracker(t)
	assert.ErrorIs(t, tr.Check("Nope", day(2024, time.March, 2)), ErrNotFound)
}

func TestDelete_RemovesRecordAndLog(t *testing.T) {
	tr := newTestTracker(t)
	mustAdd(t, tr, "Workout", types.Daily, day(2024, time.March, 1))
	require.NoError(t, tr.Check("Workout", day(2024, time.March, 2)))

	require.NoError(t, tr.Delete("Workout"))

	_, ok := tr.Document().Habits["Workout"]
	assert.False(t, ok)
	_, ok = tr.Document().Logs["Workout"]
	assert.False(t, ok)
	assert.Empty(t, tr.Document().Names())

	assert.ErrorIs(t, tr.Delete("Workout"), ErrNotFound)
}

func TestDeleteOn(t *testing.T) {
	tr := newTestTracker(t)
	mustAdd(t, tr, "PayBills", types.Weekly, day(2024, time.March, 1))

	target := day(2024, time.March, 10)
	require.NoError(t, tr.Check("PayBills", target))
	require.NoError(t, tr.Check("PayBills", target.Add(5*time.Hour)))
	require.NoError(t, tr.Check("PayBills", day(2024, time.March, 12)))

	// Every entry on the matching date goes, not just the first.
	removed, err := tr.DeleteOn("PayBills", target)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Len(t, tr.Document().Logs["PayBills"], 1)

	// No matches is a valid zero result, not an error.
	removed, err = tr.DeleteOn("PayBills", day(2024, time.March, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	// Habit record survives date-scoped deletion.
	_, ok := tr.Document().Habits["PayBills"]
	assert.True(t, ok)
}

func TestDeleteOn_UnknownHabit(t *testing.T) {
	tr := newTestTracker(t)
	_, err := tr.DeleteOn("Nope", day(2024, time.March, 10))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReset(t *testing.T) {
	tr := newTestTracker(t)
	mustAdd(t, tr, "Workout", types.Daily, day(2024, time.March, 1))
	require.NoError(t, tr.Check("Workout", day(2024, time.March, 2)))

	tr.Reset()

	assert.Empty(t, tr.Document().Habits)
	assert.Empty(t, tr.Document().Logs)
	assert.Empty(t, tr.Document().Names())
}
