//go:build !raylib

package raylib

import (
	"context"
	"errors"

	"aqualand/internal/config"
	"aqualand/internal/logging"
)

var ErrUnavailable = errors.New("raylib frontend not compiled in; rebuild with -tags raylib")

func Available() bool { return false }

func Run(context.Context, string, config.Layout, *logging.Logger) error {
	return ErrUnavailable
}
