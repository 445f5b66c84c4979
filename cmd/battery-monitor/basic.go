package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/111emj/battery-monitor/pkg/version"
	"github.com/111emj/battery-monitor/pkg/watch"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version",
		GroupID: gBasic,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get",
		Short:   "Send a notification with the current battery state",
		GroupID: gBasic,
		Args:    cobra.NoArgs,
		RunE:    runGet,
	}
}

func runGet(cmd *cobra.Command, _ []string) error {
	w, err := newWatcher(cmd, watch.DefaultInterval)
	if err != nil {
		return err
	}

	s, err := w.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get battery state: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), bold("%s", s.Message()))
	return nil
}

func NewWatchCommand() *cobra.Command {
	interval := watch.DefaultInterval

	cmd := &cobra.Command{
		Use:     "watch [notification_points...]",
		Short:   "Send a notification when the battery falls to any notification point",
		GroupID: gBasic,
		Long: `Watch the battery and send a notification when the charge falls to or
below any of the given notification points (percentages).

Each point is notified once per run, even if the battery is recharged
in the meantime. Points may be given in any order.`,
		Example: `  # Notify at 20%, 10% and 5%, checking every 30 seconds
  battery-monitor watch 20 10 5 --interval 30s`,
		Args: func(cmd *cobra.Command, args []string) error {
			if _, err := parsePoints(args); err != nil {
				return err
			}
			if cmd.Flags().Changed("interval") && interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parsePoints(args)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				points = conf.NotificationPoints()
			}
			if len(points) == 0 {
				logrus.Warn("no notification points given, no notification will be sent")
			}

			if !cmd.Flags().Changed("interval") {
				interval = conf.Interval()
			}

			w, err := newWatcher(cmd, interval)
			if err != nil {
				return err
			}

			if err := w.Run(cmd.Context(), points); err != nil {
				return fmt.Errorf("watch stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", interval, "time between battery checks (e.g. 10s, 5m)")

	return cmd
}
