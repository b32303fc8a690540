package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

const (
	FrontendGUI    = "gui"
	FrontendTUI    = "tui"
	FrontendRaylib = "raylib"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

type Options struct {
	Frontend    string `long:"frontend" env:"AQUA_FRONTEND" default:"gui" choice:"gui" choice:"tui" choice:"raylib" description:"Frontend to run: desktop window, terminal UI or raylib window"`
	Headless    bool   `long:"headless" env:"AQUA_HEADLESS" description:"Run the terminal UI (same as --frontend=tui)"`
	Debug       bool   `long:"debug" env:"AQUA_DEBUG" description:"Enable verbose debug output"`
	PersistLogs bool   `long:"persist-logs" env:"AQUA_PERSIST_LOGS" description:"Also write JSONL log files to the user cache directory"`
}

func ParseOptions() (Options, error) {
	_ = godotenv.Load()
	return parseArgs(os.Args[1:], flags.Default)
}

func ParseArgs(args []string) (Options, error) {
	return parseArgs(args, flags.HelpFlag|flags.PassDoubleDash)
}

func parseArgs(args []string, parserOpts flags.Options) (Options, error) {
	opts := Options{}
	parser := flags.NewParser(&opts, parserOpts)
	if _, err := parser.ParseArgs(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ResolveFrontend picks the frontend to run. --headless wins over --frontend.
func ResolveFrontend(opts Options) (string, error) {
	if opts.Headless {
		return FrontendTUI, nil
	}
	frontend := strings.ToLower(strings.TrimSpace(opts.Frontend))
	switch frontend {
	case "":
		return FrontendGUI, nil
	case FrontendGUI, FrontendTUI, FrontendRaylib:
		return frontend, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFrontend, opts.Frontend)
	}
}
