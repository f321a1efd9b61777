package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main wires SIGINT/SIGTERM, argv and the standard streams into run, then
// exits with its code. Bare invocation prints help.
//
// run owns the cancellation exit code: it returns 130 when a signal cut the
// batch short, and its normal code when every profile was already written.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
