package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/pomgen/internal/cli"
	pgerrors "github.com/matzehuels/pomgen/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.New(os.Stderr, cli.LogInfo).RootCommand()
	root.SilenceErrors = true

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", root.Name(), pgerrors.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps error codes to process exit codes: 2 for invalid input,
// 1 for everything else.
func exitCode(err error) int {
	switch pgerrors.GetCode(err) {
	case pgerrors.ErrCodeValidation, pgerrors.ErrCodeInvalidConfig, pgerrors.ErrCodeInvalidPath:
		return 2
	}
	return 1
}
