package source

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/111emj/battery-monitor/pkg/powerinfo"
)

// getBattery is swapped out in tests.
var getBattery = battery.Get

// Sysfs samples one battery through the operating system's power supply
// interface (/sys/class/power_supply on Linux).
type Sysfs struct {
	// Index selects the battery. Only a single battery is ever read.
	Index int
}

var _ Source = &Sysfs{}

func NewSysfs(index int) *Sysfs {
	return &Sysfs{Index: index}
}

func (s *Sysfs) Sample(_ context.Context) (powerinfo.Snapshot, error) {
	bat, err := getBattery(s.Index)
	if err != nil && !usablePartial(err) {
		return powerinfo.Snapshot{}, environmentError(NameSysfs, pkgerrors.Wrapf(err, "failed to read battery %d", s.Index))
	}
	if err != nil {
		logrus.WithField("battery", s.Index).Debugf("partial battery info: %v", err)
	}
	if bat == nil {
		return powerinfo.Snapshot{}, environmentError(NameSysfs, pkgerrors.Errorf("battery %d not found", s.Index))
	}

	snapshot, err := snapshotFromBattery(bat)
	if err != nil {
		return powerinfo.Snapshot{}, environmentError(NameSysfs, err)
	}
	return snapshot, nil
}

// usablePartial reports whether err only concerns fields a snapshot can do
// without.
func usablePartial(err error) bool {
	var partial battery.ErrPartial
	if !errors.As(err, &partial) {
		return false
	}
	return partial.Current == nil && partial.Full == nil
}

func snapshotFromBattery(bat *battery.Battery) (powerinfo.Snapshot, error) {
	if bat.Full <= 0 {
		return powerinfo.Snapshot{}, pkgerrors.Errorf("invalid full capacity %.0f", bat.Full)
	}

	percentage := int(math.Round(bat.Current / bat.Full * 100))
	if percentage < powerinfo.MinPercentage {
		percentage = powerinfo.MinPercentage
	}
	if percentage > powerinfo.MaxPercentage {
		percentage = powerinfo.MaxPercentage
	}

	return powerinfo.Snapshot{
		Percentage:   percentage,
		Charging:     bat.State == battery.Charging,
		ExpectedTime: expectedTime(bat),
	}, nil
}

// expectedTime estimates time to empty (discharging) or to full (charging).
func expectedTime(bat *battery.Battery) string {
	rate := math.Abs(bat.ChargeRate)
	if rate == 0 {
		return ""
	}

	var hours float64
	switch bat.State {
	case battery.Discharging:
		hours = bat.Current / rate
	case battery.Charging:
		hours = (bat.Full - bat.Current) / rate
	default:
		return ""
	}
	if hours < 0 || math.IsInf(hours, 0) || math.IsNaN(hours) {
		return ""
	}

	return formatClock(time.Duration(hours * float64(time.Hour)))
}

// formatClock renders d the way acpi does, as HH:MM:SS.
func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
