package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-annotate/internal/annotate"
	"github.com/ironsheep/image-annotate/internal/config"
	"github.com/ironsheep/image-annotate/internal/display"
	"github.com/ironsheep/image-annotate/internal/feedback"
	"github.com/ironsheep/image-annotate/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// window is the surface main drives: a display.Surface with a status line.
type window interface {
	display.Surface
	SetStatusHook(fn func() string)
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-annotate %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-annotate - draw circles on an image with the mouse")
			fmt.Println()
			fmt.Println("Usage: image-annotate [options] [image-path]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Controls:")
			fmt.Println("  right click      Draw a circle at the pointer")
			fmt.Println("  ESC              Quit (closing the terminal is not a clean exit)")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  IMAGE_ANNOTATE_IMAGE=path       Image when no path is given")
			fmt.Println("  IMAGE_ANNOTATE_WINDOW=name      Window name")
			fmt.Println("  IMAGE_ANNOTATE_LOG_LEVEL=debug  Log every pointer event")
			fmt.Println("  IMAGE_ANNOTATE_LOG_FILE=path    Write the log to a file")
			fmt.Println("  IMAGE_ANNOTATE_BEEP=true        Beep on every circle")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], cfg, newTerminal, os.Stdout, os.Stderr))
}

func newTerminal() (window, error) {
	return display.NewTerminal()
}

// run loads the image, drives the annotation loop and returns the process
// exit code. stdout only gets written while no window is open.
func run(args []string, cfg *config.Config, open func() (window, error), stdout, stderr io.Writer) int {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if cfg.Debug() {
		log.Printf("image-annotate v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	path := cfg.ImagePath
	if len(args) > 0 {
		path = args[0]
	}

	buf, err := imaging.Load(path)
	if err != nil {
		log.Printf("Load error: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if info, err := imaging.DescribeFile(path, buf); err == nil {
		log.Printf("Loaded %s: %s", path, info)
		fmt.Fprintf(stdout, "%s: %s\n", path, info)
	}

	surface, err := open()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := []annotate.Option{annotate.WithDebug(cfg.Debug())}
	if cfg.Beep {
		beeper := feedback.NewBeeper()
		if err := beeper.Initialize(); err != nil {
			// Non-fatal, annotation works without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer beeper.Close()
			opts = append(opts, annotate.WithNotifier(beeper))
		}
	}

	loop := annotate.New(surface, opts...)
	surface.SetStatusHook(loop.Status)

	if err := loop.Initialize(buf, cfg.WindowName); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := loop.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "ESC key has been pressed")
	return 0
}

// setupLogging points the standard logger at the configured file. The
// terminal owns stdout and stderr while the window is open, so without a
// file the log is discarded.
func setupLogging(cfg *config.Config) (func(), error) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
