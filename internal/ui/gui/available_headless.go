//go:build headless

package gui

import (
	"context"
	"errors"

	"aqualand/internal/config"
	"aqualand/internal/logging"
)

var ErrUnavailable = errors.New("desktop window is not available in this build")

func Available() bool { return false }

func Run(context.Context, string, config.Layout, *logging.Logger) error {
	return ErrUnavailable
}
