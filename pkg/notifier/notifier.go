// Package notifier delivers battery messages to the desktop.
package notifier

import "errors"

// ErrUnavailable is returned when no notification program can be found.
var ErrUnavailable = errors.New("desktop notifications unavailable")

// Notifier displays a message to the user.
//
// Delivery is best effort. The returned error is informational only:
// callers must not abort or retry because a notification failed.
type Notifier interface {
	Notify(message string) error
}
