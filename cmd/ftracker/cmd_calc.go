package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

var calcCmd = cmd{
	name:      "calc",
	shortHelp: "reports packages read from a file or stdin, one per line",
	do:        runCalc,
}

func runCalc(a *app, args []string) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	input := fs.String("input", a.cfg.Input, "path to packages file, - for stdin")
	strict := fs.Bool("strict", false, "stop at the first package that cannot be reported")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	r := a.stdin
	if *input != "" && *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			return fmt.Errorf("cannot open packages: %w", err)
		}
		defer f.Close()
		r = f
	}

	return a.calc(sensor.NewReader(r), *strict)
}

// calc reports every package from pr in input order.
// A package that fails is logged and skipped unless strict is set.
func (a *app) calc(pr *sensor.Reader, strict bool) error {
	var total, failed int
	for {
		p, err := pr.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var syntaxErr *sensor.SyntaxError
		if err != nil && !errors.As(err, &syntaxErr) {
			return err
		}

		total++
		if err == nil {
			err = a.report(p)
		}
		if err == nil {
			continue
		}

		failed++
		a.log.Error("cannot report package",
			zap.Int("line", pr.Line()),
			zap.String("kind", p.Kind),
			zap.Error(err),
		)
		if strict {
			return fmt.Errorf("line %d: %w", pr.Line(), err)
		}
	}

	a.log.Info("packages processed", zap.Int("total", total), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, total, errPackagesFailed)
	}
	return nil
}

func (a *app) report(p sensor.Package) error {
	line, err := ftracker.Summary(p.Kind, p.Data)
	if err != nil {
		return err
	}
	a.log.Debug("package reported", zap.Stringer("package", p))
	_, err = fmt.Fprintln(a.stdout, line)
	return err
}
