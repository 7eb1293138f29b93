//go:build linux || darwin

package tsh

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/OutOfBedlam/tsh/internal/tlog"
)

// NotFoundFlag is the hidden first argument tsh passes to a re-exec of
// itself when a pipeline stage's program can't be found on PATH. Go's
// exec.Cmd resolves the executable before forking, so a missing program
// never produces a real child the way execvp's failure inside an
// already-forked process does. Re-executing tsh as that missing child
// keeps every stage a real, wait4-able process, so job control doesn't
// need a separate code path for "this stage never started".
const NotFoundFlag = "--tsh-exec-not-found"

// RunNotFound implements the child side of NotFoundFlag: print the
// diagnostic the missing program would have produced and exit 1. Called
// from cmd/tsh's main before normal flag parsing.
func RunNotFound(name string) {
	fmt.Println(name + ": Command not found")
	os.Exit(1)
}

// runPipeline builds, starts and registers one parsed Command. On
// success every stage is a running child process sharing one process
// group, and the job sits in the table as either JobForeground or
// JobBackground. Reaping is left entirely to the SIGCHLD-driven loop in
// signal_unix.go: exec.Cmd.Wait is never called here, since its
// underlying os.Process.Wait performs a blocking wait4 with no
// WUNTRACED and would never observe a Ctrl-Z stop.
func (s *Shell) runPipeline(cmd *Command) {
	n := len(cmd.Stages)

	s.mu.Lock()

	var (
		leaderPID int
		closers   []*os.File
	)

	// abort drops the shell's file descriptors for the failed stage and
	// the pipeline build. Per the error taxonomy, already-started stages
	// are left running unaffected; they are reaped normally by the
	// signal layer once they finish.
	abort := func(err error) {
		fmt.Fprintln(s.stderr, err)
		for _, f := range closers {
			f.Close()
		}
		s.mu.Unlock()
	}

	var prevRead *os.File

	for i, stage := range cmd.Stages {
		c := s.buildStageCmd(stage)
		c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true, Pgid: leaderPID}
		c.Stderr = s.stderr

		switch {
		case stage.Stdin != "":
			f, err := os.Open(stage.Stdin)
			if err != nil {
				abort(fmt.Errorf("%s: %w", stage.Stdin, err))
				return
			}
			closers = append(closers, f)
			c.Stdin = f
		case prevRead != nil:
			c.Stdin = prevRead
		default:
			c.Stdin = os.Stdin
		}

		var nextRead, pipeWrite *os.File
		switch {
		case stage.Stdout != "":
			flags := os.O_WRONLY | os.O_CREATE
			if stage.Append {
				flags |= os.O_APPEND
			} else {
				flags |= os.O_TRUNC
			}
			f, err := os.OpenFile(stage.Stdout, flags, 0o644)
			if err != nil {
				abort(fmt.Errorf("%s: %w", stage.Stdout, err))
				return
			}
			closers = append(closers, f)
			c.Stdout = f
			if i < n-1 {
				// the file overrides this stage's side of the pipe; the
				// next stage still reads the pipe and sees EOF at once.
				r, w, err := os.Pipe()
				if err != nil {
					abort(fmt.Errorf("pipe: %w", err))
					return
				}
				nextRead, pipeWrite = r, w
				closers = append(closers, r, w)
			}
		case i < n-1:
			r, w, err := os.Pipe()
			if err != nil {
				abort(fmt.Errorf("pipe: %w", err))
				return
			}
			c.Stdout = w
			nextRead, pipeWrite = r, w
			closers = append(closers, r, w)
		default:
			c.Stdout = os.Stdout
		}

		if err := c.Start(); err != nil {
			abort(fmt.Errorf("%s: %w", stage.Args[0], err))
			return
		}

		if i == 0 {
			leaderPID = c.Process.Pid
		}

		// the child holds its own dup of both pipe ends now; the
		// parent must drop its copies or the next reader never sees
		// EOF and this stage's write end never sees a closed read side.
		if pipeWrite != nil {
			pipeWrite.Close()
		}
		if prevRead != nil {
			prevRead.Close()
		}
		prevRead = nextRead
	}

	for _, f := range closers {
		f.Close()
	}

	state := JobForeground
	if cmd.Background {
		state = JobBackground
	}
	cmdline := cmd.Raw
	jid, err := s.table.add(leaderPID, state, cmdline)
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if cmd.Background {
		tlog.Printf(s.stdout, "[%d] (%d) %s\n", jid, leaderPID, cmdline)
		return
	}

	s.waitForeground(leaderPID)
}

// buildStageCmd resolves stage.Args[0] on PATH the same way execvp
// would. When the lookup fails, it substitutes a re-exec of tsh itself
// in NotFoundFlag mode so the stage still becomes a real process.
func (s *Shell) buildStageCmd(stage Stage) *exec.Cmd {
	if _, err := exec.LookPath(stage.Args[0]); err != nil {
		self, serr := os.Executable()
		if serr != nil {
			self = os.Args[0]
		}
		return exec.Command(self, NotFoundFlag, stage.Args[0])
	}
	return exec.Command(stage.Args[0], stage.Args[1:]...)
}
