// Command transmutegen expands transmute.EnumAlias directives into enum alias
// types. Run it with package patterns:
//
//	transmutegen ./...
//
// Every package with files tagged "//go:build transmutegen" gets a
// transmute_gen.go file which replaces those files in regular builds.
package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/unix"

	transmutegeninternal "github.com/coolCucumber-cat/transmute-guard/internal/transmutegen"
	"github.com/coolCucumber-cat/transmute-guard/internal/transmutegen/emit"
)

var Version = "dev"

var (
	bFlag      = flag.String("b", "", "comma-separated build tags")
	tFlag      = flag.Bool("t", false, "include tests")
	oFlag      = flag.String("o", "transmute_gen.go", "output file name")
	cFlag      = flag.String("c", "auto", "colorize (auto|always|never)")
	verifyFlag = flag.String("verify", "auto", "widening checks (auto|always|never)")
	configFlag = flag.String("config", "", "config file (default "+defaultConfigFile+" if present)")
	jsonFlag   = flag.Bool("json", false, "print a JSON report instead of text")
	vFlag      = flag.Bool("v", false, "verbose logging")
)

func init() {
	transmutegeninternal.Version = Version
}

// report is printed by -json.
type report struct {
	Generated   []string                          `json:"generated,omitempty"`
	Diagnostics []transmutegeninternal.Diagnostic `json:"diagnostics,omitempty"`
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch cfg.Color {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", cfg.Color)
		os.Exit(1)
	}

	verify, err := emit.ParseVerify(cfg.Verify)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logConfig := zap.NewProductionConfig()
	if *vFlag {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	opts := transmutegeninternal.Options{
		Tags:   cfg.Tags,
		Tests:  cfg.Tests,
		Output: cfg.Output,
		Verify: verify,
		Logger: logger,
	}
	outs, err := transmutegeninternal.Main(context.Background(), wd, os.Environ(), opts, flag.Args())
	if err != nil {
		if *jsonFlag {
			printReport(report{Diagnostics: transmutegeninternal.Diagnostics(err)})
		} else {
			message := err.Error()
			if color {
				message = colorize(message)
			}
			fmt.Fprintln(os.Stderr, message)
		}
		_ = logger.Sync()
		os.Exit(1)
	}

	var generated []string
	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Debug("wrote", zap.String("file", out), zap.Int("bytes", len(outs[out])))

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		generated = append(generated, out)
		if !*jsonFlag {
			fmt.Println("Generated:", out)
		}
	}

	if *jsonFlag {
		printReport(report{Generated: generated})
	}
}

func printReport(r report) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos  = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reTab  = regexp.MustCompile(`(?m)^\t.+`)
	reWant = regexp.MustCompile(`(?m); want .+$`)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(bold + string(b) + reset)
	})
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	m = reWant.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(red + string(b) + reset)
	})
	return string(m)
}
