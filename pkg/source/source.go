// Package source samples the host battery.
package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/111emj/battery-monitor/pkg/powerinfo"
)

// Source produces battery snapshots. Every error returned by Sample is an
// *EnvironmentError and should be treated as fatal; callers never retry.
type Source interface {
	Sample(ctx context.Context) (powerinfo.Snapshot, error)
}

const (
	// NameACPI reads the battery through the acpi(1) utility.
	NameACPI = "acpi"
	// NameSysfs reads the battery through the kernel power_supply class.
	NameSysfs = "sysfs"

	// DefaultName is used when no source is chosen.
	DefaultName = NameACPI
)

var constructors = map[string]func() Source{
	NameACPI:  func() Source { return NewACPI() },
	NameSysfs: func() Source { return NewSysfs(0) },
}

// New returns the source registered under name.
func New(name string) (Source, error) {
	if name == "" {
		name = DefaultName
	}
	newFunc, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, valid sources: %v", ErrUnknownSource, name, Names())
	}
	return newFunc(), nil
}

// Names lists the registered source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
