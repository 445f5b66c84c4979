package notifier

import (
	"errors"
	"os/exec"
	"testing"
)

func stubExec(t *testing.T, look func(string) (string, error), cmd func(string, ...string) *exec.Cmd) {
	t.Helper()
	origLook, origCmd := lookPath, command
	lookPath, command = look, cmd
	t.Cleanup(func() { lookPath, command = origLook, origCmd })
}

func TestNotifySendPassesMessage(t *testing.T) {
	var gotName string
	var gotArgs []string
	stubExec(t,
		func(file string) (string, error) { return "/usr/bin/" + file, nil },
		func(name string, args ...string) *exec.Cmd {
			gotName, gotArgs = name, args
			return exec.Command("true")
		},
	)

	if err := NewNotifySend().Notify("42%, 01:00:00 ⤓"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if gotName != "/usr/bin/notify-send" {
		t.Errorf("program = %q, want /usr/bin/notify-send", gotName)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "42%, 01:00:00 ⤓" {
		t.Errorf("args = %q, want the message as the only argument", gotArgs)
	}
}

func TestNotifySendMissingProgram(t *testing.T) {
	stubExec(t,
		func(file string) (string, error) { return "", exec.ErrNotFound },
		func(name string, args ...string) *exec.Cmd {
			t.Fatalf("command should not be built when %s is missing", name)
			return nil
		},
	)

	err := NewNotifySend().Notify("10%,  ⤓")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Notify() error = %v, want ErrUnavailable", err)
	}
}

func TestNotifySendStartFailure(t *testing.T) {
	stubExec(t,
		func(file string) (string, error) { return file, nil },
		func(string, ...string) *exec.Cmd {
			return exec.Command("/nonexistent/notify-send-for-test")
		},
	)

	if err := (&NotifySend{}).Notify("10%,  ⤓"); err == nil {
		t.Fatal("Notify() error = nil, want start failure")
	}
}
