package source

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/111emj/battery-monitor/pkg/powerinfo"
)

var (
	percentageMatcher   = regexp.MustCompile(`\d+%`)
	expectedTimeMatcher = regexp.MustCompile(`\d\d:\d\d:\d\d`)
)

// ACPI samples the battery by running `acpi` and parsing its output, e.g.
//
//	Battery 0: Discharging, 87%, 03:12:40 remaining
type ACPI struct {
	run func(ctx context.Context) ([]byte, error)
}

var _ Source = &ACPI{}

// NewACPI returns a source backed by the acpi binary found in PATH.
func NewACPI() *ACPI {
	return &ACPI{run: runACPI}
}

func runACPI(ctx context.Context) ([]byte, error) {
	path, err := exec.LookPath("acpi")
	if err != nil {
		return nil, pkgerrors.Wrap(ErrToolNotFound, "acpi")
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return nil, pkgerrors.Wrapf(err, "failed to run acpi: %s", strings.TrimSpace(stderr.String()))
		}
		return nil, pkgerrors.Wrap(err, "failed to run acpi")
	}
	return out, nil
}

func (a *ACPI) Sample(ctx context.Context) (powerinfo.Snapshot, error) {
	out, err := a.run(ctx)
	if err != nil {
		return powerinfo.Snapshot{}, environmentError(NameACPI, err)
	}
	logrus.Tracef("acpi output: %q", out)

	if !utf8.Valid(out) {
		return powerinfo.Snapshot{}, environmentError(NameACPI, pkgerrors.New("acpi output is not valid utf8"))
	}

	s, err := ParseACPI(string(out))
	if err != nil {
		return powerinfo.Snapshot{}, environmentError(NameACPI, err)
	}
	return s, nil
}

// ParseACPI extracts a snapshot from acpi output. The first percentage and
// the first HH:MM:SS estimate win when several batteries are listed.
func ParseACPI(output string) (powerinfo.Snapshot, error) {
	match := percentageMatcher.FindString(output)
	if match == "" {
		return powerinfo.Snapshot{}, pkgerrors.Errorf("failed to parse acpi output for percentage: %q", strings.TrimSpace(output))
	}

	percentage, err := strconv.Atoi(strings.TrimSuffix(match, "%"))
	if err != nil {
		return powerinfo.Snapshot{}, pkgerrors.Wrapf(err, "invalid acpi percentage %q", match)
	}

	s := powerinfo.Snapshot{
		Percentage:   percentage,
		Charging:     strings.Contains(output, "Charging"),
		ExpectedTime: expectedTimeMatcher.FindString(output),
	}
	if !s.Valid() {
		return powerinfo.Snapshot{}, pkgerrors.Errorf("acpi percentage %d out of range", percentage)
	}

	return s, nil
}
