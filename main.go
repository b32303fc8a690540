package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flags "github.com/jessevdk/go-flags"

	"aqualand/internal/config"
	"aqualand/internal/logging"
	"aqualand/internal/ui/gui"
	"aqualand/internal/ui/headless"
	"aqualand/internal/ui/raylib"
)

var BuildVersion = "dev"

const logFileMaxBytes = 5 << 20

func main() {
	os.Exit(run())
}

func run() int {
	rootCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	opts, err := config.ParseOptions()
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	frontend, err := config.ResolveFrontend(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	// Headless-tag builds have no desktop window.
	if frontend == config.FrontendGUI && !gui.Available() {
		frontend = config.FrontendTUI
	}

	lock, lockedByOther, lockErr := acquireInstanceLock()
	if lockErr != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize single-instance lock:", lockErr)
		return 2
	}
	if lockedByOther {
		if frontend == config.FrontendGUI {
			hideAndDetachConsoleForGUI()
			showAlreadyRunningDialog()
		} else {
			fmt.Fprintln(os.Stderr, "Aqua Land is already running.")
		}
		return 1
	}
	defer func() {
		_ = lock.Release()
	}()

	logger := logging.New(opts.Debug)
	defer func() {
		_ = logger.Close()
	}()
	if opts.PersistLogs {
		if path, err := logger.EnableFilePersistence(logFileMaxBytes); err != nil {
			logger.Warn("failed to enable file log persistence", logging.Field("error", err))
		} else {
			logger.Debug("persisting logs", logging.Field("path", path))
		}
	}

	layout := config.DefaultLayout()
	logger.Debug("frontend selected",
		logging.Field("frontend", frontend),
		logging.Field("raylib_available", raylib.Available()),
	)

	switch frontend {
	case config.FrontendTUI:
		err = headless.Run(rootCtx, BuildVersion, layout, logger)
	case config.FrontendRaylib:
		err = raylib.Run(rootCtx, BuildVersion, layout, logger)
	default:
		hideAndDetachConsoleForGUI()
		err = gui.Run(rootCtx, BuildVersion, layout, logger)
	}
	if err != nil {
		logger.Error("frontend exited with error", logging.Field("frontend", frontend), logging.Field("error", err))
		return 1
	}
	return 0
}
