package config

import "time"

// Config holds the defaults the CLI falls back to when a value is not
// given on the command line.
type Config interface {
	NotificationPoints() []int
	Interval() time.Duration
	Source() string
	LogLevel() string

	// Load reads the configuration from the source.
	Load() error
}
