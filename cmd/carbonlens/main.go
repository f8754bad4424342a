// Command carbonlens estimates a yearly carbon footprint.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/carbonlens/internal/cli"
	"github.com/rshade/carbonlens/internal/engine"
	"github.com/rshade/carbonlens/pkg/version"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	return cli.NewRootCmd(version.GetVersion()).ExecuteContext(ctx)
}

// exitCode maps rejected inputs to 2 and every other error to 1.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, engine.ErrInvalidInput):
		return exitInvalidInput
	default:
		return exitFailure
	}
}
