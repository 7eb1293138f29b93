// Package tsh implements an interactive POSIX job-control command shell:
// a read-eval-print loop over pipelines of external commands, with
// foreground/background job tracking and signal-driven reaping.
package tsh

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"

	"github.com/OutOfBedlam/tsh/internal/tlog"
)

const defaultPrompt = "tsh> "

// maxLineBytes bounds one input line, matching the fixed-size line buffer
// the original tokenizer reads into.
const maxLineBytes = 1024

// Shell is one running instance of the job-control shell. The zero value
// is not usable; construct with New.
type Shell struct {
	mu    sync.Mutex
	table *jobTable

	pgid      int
	ttyFd     int
	termState *term.State

	prompt string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger

	fgWake chan int
}

// Option configures a Shell at construction time.
type Option func(*Shell)

// WithPrompt overrides the "tsh> " prompt string.
func WithPrompt(p string) Option {
	return func(s *Shell) { s.prompt = p }
}

// WithJobCapacity overrides the default 16-slot job table.
func WithJobCapacity(n int) Option {
	return func(s *Shell) { s.table = newJobTable(n) }
}

// WithStdin overrides the shell's input stream. Only meaningful for
// tests; interactive use always wants the controlling terminal.
func WithStdin(r io.Reader) Option {
	return func(s *Shell) { s.stdin = r }
}

// WithStdout overrides the shell's output stream.
func WithStdout(w io.Writer) Option {
	return func(s *Shell) { s.stdout = w }
}

// WithStderr overrides the shell's diagnostic stream.
func WithStderr(w io.Writer) Option {
	return func(s *Shell) { s.stderr = w }
}

// WithLogger overrides the slog.Logger used for internal diagnostics that
// are not part of the shell's documented output (e.g. a failed terminal
// mode restore). Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) { s.log = l }
}

// New builds a Shell with the given options applied over the defaults.
func New(opts ...Option) *Shell {
	s := &Shell{
		table:  newJobTable(defaultJobCapacity),
		prompt: defaultPrompt,
		stdin:  os.Stdin,
		stdout: colorable.NewColorableStdout(),
		stderr: colorable.NewColorableStderr(),
		log:    slog.Default(),
		fgWake: make(chan int, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run installs job control over the controlling terminal, then loops
// reading, parsing and dispatching lines until exit or end of input. The
// returned code is the shell's own process exit status.
func (s *Shell) Run() int {
	if err := s.bootstrap(); err != nil {
		fmt.Fprintln(s.stderr, err)
		return 1
	}

	scanner := bufio.NewScanner(s.stdin)
	scanner.Buffer(make([]byte, 0, maxLineBytes), maxLineBytes)

	for {
		tlog.Printf(s.stdout, "%s", s.prompt)
		if f, ok := s.stdout.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}

		if !scanner.Scan() {
			tlog.Println(s.stdout)
			return 0
		}

		if exit, code := s.eval(scanner.Text()); exit {
			return code
		}
	}
}

// eval mirrors the original loop's structure: builtins are recognized by
// the line's first word before any pipe-splitting happens, so "exit | x"
// still exits, exactly as it did in the shell this behavior is grounded
// on.
func (s *Shell) eval(line string) (exit bool, code int) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false, 0
	}

	switch words[0] {
	case "exit":
		return true, 0
	case "jobs":
		s.cmdJobs()
		return false, 0
	case "bg":
		s.cmdBgFg("bg", words[1:])
		return false, 0
	case "fg":
		s.cmdBgFg("fg", words[1:])
		return false, 0
	}

	cmd, err := ParseLine(line)
	if err != nil {
		fmt.Fprintln(s.stderr, err)
		return false, 0
	}
	if len(cmd.Stages) == 0 {
		return false, 0
	}

	s.runPipeline(cmd)
	return false, 0
}
