package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/111emj/battery-monitor/pkg/config"
	"github.com/111emj/battery-monitor/pkg/notifier"
	"github.com/111emj/battery-monitor/pkg/source"
)

var (
	logLevel   = "info"
	configPath = ""
	sourceName = source.DefaultName
)

// conf is loaded before any subcommand runs.
var conf config.Config

var (
	gBasic        = "Basic:"
	commandGroups = []string{
		gBasic,
	}
)

// Swapped out in tests.
var (
	newSource   = source.New
	newNotifier = func() notifier.Notifier { return notifier.NewNotifySend() }
)

func setupLogger(cmd *cobra.Command) error {
	level := logLevel
	if !cmd.Flags().Changed("log-level") && conf != nil {
		level = conf.LogLevel()
	}

	l, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(l)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, source.ErrToolNotFound) {
		fmt.Fprintln(os.Stderr, "\nError: acpi is not installed")
		fmt.Fprintln(os.Stderr, "  - Install the 'acpi' package with your package manager")
		fmt.Fprintln(os.Stderr, "  - Or read the battery directly with '--source sysfs'")
	} else if errors.Is(err, source.ErrEnvironment) {
		fmt.Fprintln(os.Stderr, "\nError: failed to read battery status")
		fmt.Fprintln(os.Stderr, "Does this machine have a battery?")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battery-monitor",
		Short: "battery-monitor sends desktop notifications about the battery",
		Long: `battery-monitor sends desktop notifications about the battery charge.

Without a subcommand it behaves like 'get'.
Depends on the 'acpi' (unless --source sysfs is used) and 'notify-send' utilities.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Arguments and flags are valid by now, don't print usage for
			// runtime failures.
			cmd.SilenceUsage = true

			f, err := config.NewFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			conf = f

			if err := setupLogger(cmd); err != nil {
				return err
			}
			logrus.WithFields(f.LogrusFields()).Debug("config loaded")

			return nil
		},
		RunE: runGet,
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", "", "optional YAML config file path")
	globalFlags.StringVar(&sourceName, "source", source.DefaultName, fmt.Sprintf("battery source %v", source.Names()))

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewGetCommand(),
		NewWatchCommand(),
		NewVersionCommand(),
	)

	return cmd
}
