package powerinfo

import "fmt"

const (
	// MinPercentage is the lowest charge a Snapshot can report.
	MinPercentage = 0
	// MaxPercentage is the highest charge a Snapshot can report.
	MaxPercentage = 100
)

const (
	// GlyphCharging marks a message sampled while on external power.
	GlyphCharging = "⤒"
	// GlyphDischarging marks a message sampled while running on battery.
	GlyphDischarging = "⤓"
)

// Snapshot is a single battery sample. It is produced fresh on every poll
// and never modified afterwards.
type Snapshot struct {
	// Percentage is the charge level, always within [MinPercentage, MaxPercentage].
	Percentage int `json:"percentage"`
	// Charging reports whether the device is charging from external power.
	Charging bool `json:"charging"`
	// ExpectedTime is a human-readable time estimate (e.g. "01:23:45").
	// Empty means unknown.
	ExpectedTime string `json:"expectedTime,omitempty"`
}

// Glyph returns the direction marker for the snapshot.
func (s Snapshot) Glyph() string {
	if s.Charging {
		return GlyphCharging
	}
	return GlyphDischarging
}

// Message formats the snapshot as a one-line notification body,
// e.g. "42%, 01:10:00 ⤓".
func (s Snapshot) Message() string {
	return fmt.Sprintf("%d%%, %s %s", s.Percentage, s.ExpectedTime, s.Glyph())
}

// Valid reports whether the percentage is within range.
func (s Snapshot) Valid() bool {
	return s.Percentage >= MinPercentage && s.Percentage <= MaxPercentage
}
