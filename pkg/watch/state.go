package watch

import (
	"sort"

	"github.com/111emj/battery-monitor/pkg/powerinfo"
)

// Unnotified is the initial cursor. It lies above any valid percentage so
// the first sample can already fire the highest threshold.
const Unnotified = powerinfo.MaxPercentage + 1

// State is the watch cursor. It belongs to a single Run and is threaded
// through every tick.
type State struct {
	// LastNotified is the lowest threshold notified so far. It never
	// increases, not even when the battery is recharged.
	LastNotified int
	// Thresholds are distinct and sorted from highest to lowest.
	Thresholds []int
}

// NewState returns a cursor over thresholds. The input is copied, sorted
// in descending order and de-duplicated, so callers may pass points in any
// order.
func NewState(thresholds []int) *State {
	sorted := make([]int, len(thresholds))
	copy(sorted, thresholds)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	distinct := sorted[:0]
	for i, t := range sorted {
		if i > 0 && t == sorted[i-1] {
			continue
		}
		distinct = append(distinct, t)
	}

	return &State{
		LastNotified: Unnotified,
		Thresholds:   distinct,
	}
}

// Evaluate moves the cursor down past every threshold s has newly crossed
// and returns those thresholds, highest first. A percentage equal to a
// threshold counts as crossed.
func (st *State) Evaluate(s powerinfo.Snapshot) []int {
	var fired []int
	for _, t := range st.Thresholds {
		if st.LastNotified > t && s.Percentage <= t {
			st.LastNotified = t
			fired = append(fired, t)
		}
	}
	return fired
}
