package main

import "os"

type app struct{}

func (app) main() {
	os.Exit(1)
}

func exit(code int) {
	os.Exit(code)
}

func main() {
	exit(run())
}

func run() int {
	return 0
}
