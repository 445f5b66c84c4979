package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/111emj/battery-monitor/pkg/watch"
)

// parsePoints parses notification points given on the command line.
func parsePoints(args []string) ([]int, error) {
	points := make([]int, 0, len(args))
	for _, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid notification point %q: %v", arg, err)
		}
		if value < 0 {
			return nil, fmt.Errorf("invalid notification point %d: must not be negative", value)
		}
		points = append(points, value)
	}

	return points, nil
}

// newWatcher wires the selected battery source to the desktop notifier.
func newWatcher(cmd *cobra.Command, interval time.Duration) (*watch.Watcher, error) {
	name := sourceName
	if !cmd.Flags().Changed("source") && conf != nil {
		name = conf.Source()
	}

	src, err := newSource(name)
	if err != nil {
		return nil, err
	}

	return watch.NewWatcher(src, newNotifier(), interval), nil
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
