// Package assert holds helpers for failures the CLI cannot recover from,
// such as a broken stdout.
package assert

import (
	"log/slog"
	"os"
)

var exit = os.Exit

// Success returns v, or logs err and exits the process with status 1.
func Success[T any](v T, err error) T {
	NoError(err)
	return v
}

func NoError(err error) {
	if err == nil {
		return
	}
	slog.Error("unrecoverable error", "error", err)
	exit(1)
}
