package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var randomCmd = cmd{
	name:      "random",
	shortHelp: "generates random sensor packages suitable for calc",
	do:        runRandom,
}

func runRandom(a *app, args []string) error {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	count := fs.Int("n", 3, "number of packages")
	flagKinds := fs.String("kinds", "", "comma separated list of kinds to choose from")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var kinds []string
	if *flagKinds != "" {
		kinds = strings.Split(*flagKinds, ",")
	}

	for i := 0; i < *count; i++ {
		kind := random.Kind()
		if len(kinds) > 0 {
			kind = kinds[i%len(kinds)]
		}

		p, err := random.Package(strings.TrimSpace(kind))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.stdout, p); err != nil {
			return err
		}
	}
	return nil
}
