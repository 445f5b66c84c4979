package notifier

import (
	"os/exec"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	lookPath = exec.LookPath
	command  = exec.Command
)

// NotifySend shows messages with notify-send(1). It does not wait for the
// program to finish.
type NotifySend struct {
	// Program is the binary to run, "notify-send" if empty.
	Program string
}

var _ Notifier = &NotifySend{}

func NewNotifySend() *NotifySend {
	return &NotifySend{Program: "notify-send"}
}

func (n *NotifySend) Notify(message string) error {
	program := n.Program
	if program == "" {
		program = "notify-send"
	}

	path, err := lookPath(program)
	if err != nil {
		return pkgerrors.Wrapf(ErrUnavailable, "%s not found", program)
	}

	cmd := command(path, message)
	if err := cmd.Start(); err != nil {
		return pkgerrors.Wrapf(err, "failed to start %s", program)
	}

	// Reap the child so finished notifications don't linger as zombies.
	go func() {
		if err := cmd.Wait(); err != nil {
			logrus.Debugf("%s exited: %v", program, err)
		}
	}()

	return nil
}
