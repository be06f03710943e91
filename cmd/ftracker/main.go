package main

//go:generate go build -o=../../bin/ftracker

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"go.uber.org/zap"
)

var cmds = []cmd{
	demoCmd,
	calcCmd,
	randomCmd,
}

type cmd struct {
	name      string
	shortHelp string
	do        func(a *app, args []string) error
}

const Usage = `ftracker computes workout statistics from fitness sensor packages.

Usage: ftracker [-log-level level] [-cpuprofile path] <command> [arguments]

The commands are:
	help	show this help message
`

var (
	// errUsage indicates the command line could not be understood
	errUsage = errors.New("usage")
	// errPackagesFailed indicates that some packages were not reported
	errPackagesFailed = errors.New("some packages failed")
)

// app carries everything a command needs to run.
type app struct {
	cfg    config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

func help(w io.Writer) error {
	fmt.Fprint(w, Usage)

	for _, cmd := range cmds {
		fmt.Fprintf(w, "\t%s\t%s\n", cmd.name, cmd.shortHelp)
	}

	return errUsage
}

func fatalf(code int, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ftracker: "+format+"\n", args...)
	os.Exit(code)
}

func exit(err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fatalf(1, "%s", err)
	}
}

func main() {
	exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	global := flag.NewFlagSet("ftracker", flag.ContinueOnError)
	global.SetOutput(stderr)
	logLevel := global.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	cpuProfile := global.String("cpuprofile", "", "write CPU profile to file")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("cannot parse arguments: %w", errUsage)
	}

	args = global.Args()
	if len(args) == 0 || args[0] == "help" {
		return help(stderr)
	}

	logger, err := newLogger(stderr, *logLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *cpuProfile != "" {
		stop, err := startCPUProfile(*cpuProfile)
		if err != nil {
			return err
		}
		defer stop()
	}

	a := &app{
		cfg:    cfg,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    logger,
	}

	for _, cmd := range cmds {
		if args[0] == cmd.name {
			logger.Debug("running command", zap.String("command", cmd.name))
			return cmd.do(a, args[1:])
		}
	}

	return help(stderr)
}

func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("cannot start CPU profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}

// parseFlags parses command arguments, treating any flag error as a usage error.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), errUsage)
	}
	return nil
}
