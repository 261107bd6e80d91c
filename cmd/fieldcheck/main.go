// Command fieldcheck validates form and JSON input against declarative
// spec files, either once from the command line or as an HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
)

// errInvalid reports that validation ran and at least one result failed.
var errInvalid = errors.New("validation failed")

const (
	exitInvalid = 1
	exitError   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalid):
		return exitInvalid
	default:
		color.New(color.FgHiRed, color.Bold).Fprint(stderr, "Error: ")
		fmt.Fprintln(stderr, err)
		return exitError
	}
}
