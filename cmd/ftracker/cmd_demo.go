package main

import (
	"flag"

	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

var demoCmd = cmd{
	name:      "demo",
	shortHelp: "reports the built-in sample packages",
	do:        runDemo,
}

func runDemo(a *app, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	for _, p := range sensor.Demo() {
		if err := a.report(p); err != nil {
			return err
		}
	}
	return nil
}
