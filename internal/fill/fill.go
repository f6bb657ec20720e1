// Package fill populates the tracker with synthetic demo data. The randomness
// lives behind an injectable source so tests can seed it; the engine's
// correctness contract does not extend to what fill generates.
package fill

import (
	"errors"
	"math/rand"
	"time"

	"habitcli/internal/tracker"
	"habitcli/internal/types"
)

// SampleHabits are the demo habits seeded by fill, in add order.
var SampleHabits = []struct {
	Name        string
	Periodicity types.Periodicity
}{
	{"Workout", types.Daily},
	{"ReadBook", types.Daily},
	{"WaterPlants", types.Daily},
	{"GuitarPractice", types.Daily},
	{"WeeklyGrocery", types.Weekly},
	{"PayBills", types.Weekly},
}

// Filler generates fake check-in history.
type Filler struct {
	rng *rand.Rand
}

// New returns a filler seeded from seed. Any fixed seed reproduces the same
// data set.
func New(seed int64) *Filler {
	return &Filler{rng: rand.New(rand.NewSource(seed))}
}

// Apply seeds the sample habits (skipping ones that already exist) and then
// scatters 0-10 random check-ins over the past 15 days for every habit in the
// registry, the user's own habits included.
func (f *Filler) Apply(tr *tracker.Tracker, now time.Time) error {
	for _, sample := range SampleHabits {
		err := tr.Add(sample.Name, sample.Periodicity, now)
		if err != nil && !errors.Is(err, tracker.ErrAlreadyExists) {
			return err
		}
	}

	for _, name := range tr.Document().Names() {
		count := f.rng.Intn(11)
		for i := 0; i < count; i++ {
			offset := 1 + f.rng.Intn(15)
			if err := tr.Check(name, now.AddDate(0, 0, -offset)); err != nil {
				return err
			}
		}
	}
	return nil
}
