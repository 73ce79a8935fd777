// Package main provides the intracompat CLI, which runs the tests of older
// SDL releases against the library of a newer release.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app := newApp(os.Stdout, os.Stderr)
	err := app.RunContext(ctx, os.Args)
	stop()
	os.Exit(exitCode(app.ErrWriter, err))
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "intracompat"
	app.Usage = "SDL3 intra-version compatibility tester"
	app.Description = "intracompat runs the installed tests of older tags against the library of the DUT tag"
	app.Flags = Flags
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Action = run
	// exit codes are decided by exitCode
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

// exitCode reports err and maps it to the process exit code
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrTestsFailed):
		return ExitFailure
	default:
		var runErr *RunError
		if errors.As(err, &runErr) {
			err = runErr.Err
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return ExitFailure
	}
}
