package config

import (
	"io"
	"os"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	defaultFileConfig = &RawFileConfig{
		NotificationPoints: []int{},
		Interval:           ptrTo("10s"),
		Source:             ptrTo("acpi"),
		LogLevel:           ptrTo("info"),
	}
)

var _ Config = &File{}

// File is a read-only YAML configuration file. A File with an empty path
// behaves like a missing file and yields the defaults.
type File struct {
	c        *RawFileConfig
	interval time.Duration
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

type RawFileConfig struct {
	NotificationPoints []int   `yaml:"notificationPoints,omitempty"`
	Interval           *string `yaml:"interval,omitempty"`
	Source             *string `yaml:"source,omitempty"`
	LogLevel           *string `yaml:"logLevel,omitempty"`
}

func (f *File) NotificationPoints() []int {
	if f.c == nil {
		panic("config is nil")
	}

	points := f.c.NotificationPoints
	if points == nil {
		points = defaultFileConfig.NotificationPoints
	}

	out := make([]int, len(points))
	copy(out, points)
	return out
}

func (f *File) Interval() time.Duration {
	if f.c == nil {
		panic("config is nil")
	}

	return f.interval
}

func (f *File) Source() string {
	if f.c == nil {
		panic("config is nil")
	}

	if f.c.Source != nil {
		return *f.c.Source
	}
	return *defaultFileConfig.Source
}

func (f *File) LogLevel() string {
	if f.c == nil {
		panic("config is nil")
	}

	if f.c.LogLevel != nil {
		return *f.c.LogLevel
	}
	return *defaultFileConfig.LogLevel
}

func (f *File) Load() error {
	if f.filepath == "" {
		return f.set(&RawFileConfig{})
	}

	fp, err := os.Open(f.filepath)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		// An empty file means defaults.
		return f.set(&RawFileConfig{})
	}

	conf := RawFileConfig{}
	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}

	return pkgerrors.Wrapf(f.set(&conf), "invalid config file %s", f.filepath)
}

// set validates c and makes it the active configuration.
func (f *File) set(c *RawFileConfig) error {
	for _, p := range c.NotificationPoints {
		if p < 0 {
			return pkgerrors.Errorf("notification point must not be negative, got %d", p)
		}
	}

	raw := *defaultFileConfig.Interval
	if c.Interval != nil {
		raw = *c.Interval
	}
	interval, err := time.ParseDuration(raw)
	if err != nil {
		return pkgerrors.Wrapf(err, "invalid interval %q", raw)
	}
	if interval <= 0 {
		return pkgerrors.Errorf("interval must be positive, got %s", interval)
	}

	f.c = c
	f.interval = interval
	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"path":               f.filepath,
		"notificationPoints": f.NotificationPoints(),
		"interval":           f.Interval().String(),
		"source":             f.Source(),
		"logLevel":           f.LogLevel(),
	}
}

func ptrTo[T any](v T) *T {
	return &v
}
