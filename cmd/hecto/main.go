// Package main is the entry point for the hecto editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/xolve/hecto/internal/app"
	"github.com/xolve/hecto/internal/config"
	"github.com/xolve/hecto/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type flags struct {
	configPath string
	logLevel   string
	logFile    string
	readOnly   bool
	file       string

	// overrides holds the config settings given explicitly on the command line.
	overrides map[string]any
}

func run() int {
	f, code, ok := parseFlags(os.Args[1:])
	if !ok {
		return code
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: hecto must be run in a terminal")
		return 1
	}

	cfg, err := config.Load(config.WithPath(f.configPath), config.WithOverrides(f.overrides))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var logOut io.Writer = io.Discard
	if cfg.Logging.File != "" {
		lf, err := app.OpenLogFile(cfg.Logging.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer lf.Close()
		logOut = lf
	}
	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Logging.Level),
		Output: logOut,
		Prefix: "hecto",
	}).WithField("session", uuid.NewString())

	application := app.New(app.Options{
		File:     f.file,
		Config:   cfg,
		Logger:   logger,
		Version:  version,
		ReadOnly: f.readOnly,
	})

	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application.SetBackend(screen)

	// Termination requests end the session without a save prompt.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			screen.PostEvent(backend.Event{Type: backend.EventInterrupt})
		}
	}()

	if err := application.Run(); err != nil {
		logger.Error("run: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Println("Goodbye.")
	return 0
}

// parseFlags parses the command line. When ok is false the process should
// exit with code.
func parseFlags(args []string) (f flags, code int, ok bool) {
	fs := flag.NewFlagSet("hecto", flag.ContinueOnError)
	var showVersion, showHelp bool

	fs.StringVar(&f.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&f.readOnly, "readonly", false, "Open the file in read-only mode")
	fs.BoolVar(&f.readOnly, "R", false, "Open the file in read-only mode (shorthand)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Hecto - a small terminal text editor\n\n")
		fmt.Fprintf(out, "Usage: hecto [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  hecto                 Open with empty buffer\n")
		fmt.Fprintf(out, "  hecto notes.txt       Open a file\n")
		fmt.Fprintf(out, "  hecto -R notes.txt    Open file read-only\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return f, 0, false
		}
		return f, 2, false
	}

	if showHelp {
		fs.Usage()
		return f, 0, false
	}

	if showVersion {
		fmt.Printf("Hecto %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return f, 0, false
	}

	switch fs.NArg() {
	case 0:
	case 1:
		f.file = fs.Arg(0)
	default:
		fmt.Fprintf(fs.Output(), "Error: expected at most one file, got %d\n", fs.NArg())
		return f, 2, false
	}

	// Only flags given explicitly override the config file and environment.
	f.overrides = make(map[string]any)
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "log-level":
			f.overrides["logging.level"] = f.logLevel
		case "log-file":
			f.overrides["logging.file"] = f.logFile
		}
	})

	return f, 0, true
}
