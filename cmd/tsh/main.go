package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/OutOfBedlam/tsh"
)

func main() {
	// The re-exec sentinel must be checked before flag.Parse: this
	// invocation isn't a real interactive shell, it's a stand-in child
	// process for a pipeline stage whose program wasn't found on PATH.
	if len(os.Args) >= 3 && os.Args[1] == tsh.NotFoundFlag {
		tsh.RunNotFound(os.Args[2])
		return
	}

	prompt := flag.String("prompt", "", "override the shell prompt")
	jobs := flag.Int("jobs", 0, "job table capacity (0 uses the default)")
	flag.Parse()

	opts := []tsh.Option{}
	if *prompt != "" {
		opts = append(opts, tsh.WithPrompt(*prompt))
	}
	if *jobs > 0 {
		opts = append(opts, tsh.WithJobCapacity(*jobs))
	}

	sh := tsh.New(opts...)
	code := sh.Run()
	if code != 0 {
		slog.Error("tsh exited with non-zero status", "code", code)
	}
	os.Exit(code)
}
