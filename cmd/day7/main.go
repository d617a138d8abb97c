package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/aoc-2025/internal/beams"
	"github.com/vancomm/aoc-2025/internal/config"
	"github.com/vancomm/aoc-2025/internal/day7"
	"github.com/vancomm/aoc-2025/internal/puzzle"
)

var (
	log = logrus.New()

	inputPath string
	logFile   string
	noCache   bool
	show      bool
)

func init() {
	const usage = "puzzle input file, - for stdin (fetched when empty)"
	flag.StringVar(&inputPath, "input", "", usage)
	flag.StringVar(&inputPath, "i", "", usage+" (shorthand)")
	flag.StringVar(&logFile, "log-file", "", "also write JSON logs to this file, rotated")
	flag.BoolVar(&noCache, "no-cache", false, "always fetch the input")
	flag.BoolVar(&show, "show", false, "log the lit grid after part 1 (debug level)")
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() || show {
		logLevel = logrus.DebugLevel
	}

	var hook logrus.Hook
	if logFile != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", logFile, err)
		}
	}

	for _, l := range []*logrus.Logger{log, beams.Log, puzzle.Log} {
		l.SetLevel(logLevel)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		l.SetOutput(os.Stderr)
		if hook != nil {
			l.AddHook(hook)
		}
	}
	return nil
}

func readInput(ctx context.Context) (string, error) {
	switch inputPath {
	case "":
		return fetchInput(ctx)
	case "-":
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	default:
		b, err := os.ReadFile(inputPath)
		return string(b), err
	}
}

func fetchInput(ctx context.Context) (string, error) {
	session, err := config.NewSession()
	if err != nil {
		return "", err
	}
	year, err := config.Year()
	if err != nil {
		return "", err
	}

	var opts []puzzle.Option
	if !noCache {
		dir, err := config.CacheDir()
		if err != nil {
			return "", err
		}
		opts = append(opts, puzzle.WithCache(puzzle.NewCache(dir)))
	}

	client, err := puzzle.NewClient(puzzle.Config{
		BaseURL: config.BaseURL(),
		Year:    year,
		Session: session.Token,
	}, opts...)
	if err != nil {
		return "", err
	}
	return client.CachedInput(ctx, day7.Day)
}

func showGrid(input string) {
	grid, err := beams.Parse(input)
	if err != nil {
		return
	}
	if _, err := grid.Drop(); err == nil {
		log.Debug("lit grid:\n" + grid.String())
	}
}

func run(ctx context.Context, w io.Writer) error {
	input, err := readInput(ctx)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	answers, err := day7.Solve(ctx, input)
	if err != nil {
		return fmt.Errorf("unable to solve day %d: %w", day7.Day, err)
	}
	log.WithFields(answers.Fields()).Debug("solved")

	if show {
		showGrid(input)
	}

	fmt.Fprintf(w, "part1 ans -> %s\n", answers.Part1)
	fmt.Fprintf(w, "part2 ans -> %s\n", answers.Part2)
	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	if err := setupLogging(); err != nil {
		log.Fatal(err)
	}

	if err := run(mainCtx, os.Stdout); err != nil {
		log.Fatalf("exit reason: %s", err)
	}
}
