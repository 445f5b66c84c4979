package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/distatus/battery"

	"github.com/111emj/battery-monitor/pkg/powerinfo"
)

func withBattery(t *testing.T, bat *battery.Battery, err error) {
	t.Helper()
	orig := getBattery
	getBattery = func(int) (*battery.Battery, error) { return bat, err }
	t.Cleanup(func() { getBattery = orig })
}

func TestSysfsSample(t *testing.T) {
	tests := []struct {
		name    string
		bat     *battery.Battery
		err     error
		want    powerinfo.Snapshot
		wantErr bool
	}{
		{
			name: "discharging",
			bat:  &battery.Battery{State: battery.Discharging, Current: 25000, Full: 50000, ChargeRate: 10000},
			want: powerinfo.Snapshot{Percentage: 50, ExpectedTime: "02:30:00"},
		},
		{
			name: "charging",
			bat:  &battery.Battery{State: battery.Charging, Current: 40000, Full: 50000, ChargeRate: 20000},
			want: powerinfo.Snapshot{Percentage: 80, Charging: true, ExpectedTime: "00:30:00"},
		},
		{
			name: "negative rate while discharging",
			bat:  &battery.Battery{State: battery.Discharging, Current: 5000, Full: 50000, ChargeRate: -10000},
			want: powerinfo.Snapshot{Percentage: 10, ExpectedTime: "00:30:00"},
		},
		{
			name: "full has no estimate",
			bat:  &battery.Battery{State: battery.Full, Current: 50000, Full: 50000, ChargeRate: 0},
			want: powerinfo.Snapshot{Percentage: 100},
		},
		{
			name: "over full is clamped",
			bat:  &battery.Battery{State: battery.Full, Current: 51000, Full: 50000},
			want: powerinfo.Snapshot{Percentage: 100},
		},
		{
			name: "partial without rate",
			bat:  &battery.Battery{State: battery.Discharging, Current: 10000, Full: 50000},
			err:  battery.ErrPartial{ChargeRate: errors.New("no rate")},
			want: powerinfo.Snapshot{Percentage: 20},
		},
		{
			name:    "partial without capacity",
			bat:     &battery.Battery{State: battery.Discharging},
			err:     battery.ErrPartial{Full: errors.New("no full"), Current: errors.New("no current")},
			wantErr: true,
		},
		{
			name:    "not found",
			err:     battery.ErrNotFound,
			wantErr: true,
		},
		{
			name:    "zero full capacity",
			bat:     &battery.Battery{State: battery.Discharging, Current: 10},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBattery(t, tt.bat, tt.err)

			got, err := NewSysfs(0).Sample(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Sample() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrEnvironment) {
					t.Fatalf("Sample() error = %v, want ErrEnvironment", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Sample() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{90 * time.Minute, "01:30:00"},
		{3*time.Hour + 12*time.Minute + 40*time.Second, "03:12:40"},
		{1500 * time.Millisecond, "00:00:02"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.d); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		if s == nil {
			t.Fatalf("New(%q) returned nil", name)
		}
	}

	if s, err := New(""); err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	} else if _, ok := s.(*ACPI); !ok {
		t.Fatalf("default source is %T, want *ACPI", s)
	}

	if _, err := New("upower"); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("New(\"upower\") error = %v, want ErrUnknownSource", err)
	}
}
