//go:build linux || darwin

package tsh

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// bootstrap acquires job control the way a real shell does at startup:
// wait until it is itself the terminal's foreground process group,
// become its own process group leader, take the terminal, save the line
// discipline, and route the signals job control cares about away from
// Go's default handling.
func (s *Shell) bootstrap() error {
	s.ttyFd = int(os.Stdin.Fd())

	for {
		fg, err := unix.IoctlGetInt(s.ttyFd, unix.TIOCGPGRP)
		if err != nil {
			return fmt.Errorf("tsh: tcgetpgrp: %w", err)
		}
		mine := unix.Getpgrp()
		if fg == mine {
			break
		}
		_ = unix.Kill(-mine, unix.SIGTTIN)
	}

	pid := os.Getpid()
	if err := unix.Setpgid(pid, pid); err != nil {
		return fmt.Errorf("tsh: setpgid: %w", err)
	}
	s.pgid = pid

	if err := unix.IoctlSetPointerInt(s.ttyFd, unix.TIOCSPGRP, s.pgid); err != nil {
		return fmt.Errorf("tsh: tcsetpgrp: %w", err)
	}

	state, err := term.GetState(s.ttyFd)
	if err != nil {
		return fmt.Errorf("tsh: save terminal state: %w", err)
	}
	s.termState = state

	s.installSignalHandlers()
	return nil
}

// installSignalHandlers routes SIGINT and SIGTSTP away from Go's default
// (which would kill or stop tsh itself), ignores SIGTTIN/SIGTTOU so a
// background write or a terminal-settings change from tsh never stops
// tsh, and starts the SIGCHLD-driven reaper.
func (s *Shell) installSignalHandlers() {
	discard := make(chan os.Signal, 8)
	signal.Notify(discard, unix.SIGINT, unix.SIGTSTP)
	go func() {
		for range discard {
		}
	}()

	signal.Ignore(unix.SIGTTIN, unix.SIGTTOU)

	sigchld := make(chan os.Signal, 8)
	signal.Notify(sigchld, unix.SIGCHLD)
	go s.reapLoop(sigchld)
}
