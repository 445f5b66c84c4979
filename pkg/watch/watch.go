// Package watch notifies the user when the battery charge crosses
// configured thresholds.
package watch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/111emj/battery-monitor/pkg/notifier"
	"github.com/111emj/battery-monitor/pkg/powerinfo"
	"github.com/111emj/battery-monitor/pkg/source"
)

// DefaultInterval is the time between two samples.
const DefaultInterval = 10 * time.Second

// Watcher samples a battery source and forwards messages to a notifier.
type Watcher struct {
	Source   source.Source
	Notifier notifier.Notifier
	Interval time.Duration

	sleep      func(time.Duration)
	lastStatus tickStatus
	lastPrint  time.Time
}

func NewWatcher(src source.Source, n notifier.Notifier, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		Source:   src,
		Notifier: n,
		Interval: interval,
		sleep:    time.Sleep,
	}
}

// Get samples the battery once and notifies unconditionally.
func (w *Watcher) Get(ctx context.Context) (powerinfo.Snapshot, error) {
	s, err := w.Source.Sample(ctx)
	if err != nil {
		return powerinfo.Snapshot{}, err
	}
	w.notify(s)
	return s, nil
}

// Run watches the battery forever. It only returns when sampling fails;
// that error is fatal and never retried. Notification failures are
// ignored.
func (w *Watcher) Run(ctx context.Context, thresholds []int) error {
	st := NewState(thresholds)
	logrus.WithFields(logrus.Fields{
		"thresholds": st.Thresholds,
		"interval":   w.Interval.String(),
	}).Info("watching battery")

	sleep := w.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	s, err := w.Source.Sample(ctx)
	if err != nil {
		return err
	}

	for {
		w.tick(st, s)

		sleep(w.Interval)

		s, err = w.Source.Sample(ctx)
		if err != nil {
			return err
		}
	}
}

// tick notifies once for every threshold s has crossed and returns how
// many notifications were attempted.
func (w *Watcher) tick(st *State, s powerinfo.Snapshot) int {
	fired := st.Evaluate(s)
	w.printStatus(s, st.LastNotified)

	for _, t := range fired {
		logrus.WithFields(logrus.Fields{
			"threshold":  t,
			"percentage": s.Percentage,
			"charging":   s.Charging,
		}).Info("battery threshold crossed")
		w.notify(s)
	}
	return len(fired)
}

func (w *Watcher) notify(s powerinfo.Snapshot) {
	msg := s.Message()
	if err := w.Notifier.Notify(msg); err != nil {
		logrus.Debugf("notification %q not delivered: %v", msg, err)
	}
}

type tickStatus struct {
	snapshot     powerinfo.Snapshot
	lastNotified int
}

// printStatus logs the tick at debug level when something changed, and at
// trace level otherwise.
func (w *Watcher) printStatus(s powerinfo.Snapshot, lastNotified int) {
	current := tickStatus{snapshot: s, lastNotified: lastNotified}
	entry := logrus.WithFields(logrus.Fields{
		"percentage":   s.Percentage,
		"charging":     s.Charging,
		"expectedTime": s.ExpectedTime,
		"lastNotified": lastNotified,
	})

	defer func() { w.lastPrint = time.Now() }()

	if time.Since(w.lastPrint) < w.Interval+time.Second && w.lastStatus == current {
		entry.Trace("watch loop status")
		return
	}

	entry.Debug("watch loop status")
	w.lastStatus = current
}
