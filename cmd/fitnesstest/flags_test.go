package main

import (
	"flag"
)

// Доступные для тест-сьютов флаги командной строки
var (
	flagBinaryPath string // путь до бинарного файла ftracker
	flagSourcePath string // путь до исходного кода проекта
)

func init() {
	flag.StringVar(&flagBinaryPath, "binary-path", "", "path to ftracker binary")
	flag.StringVar(&flagSourcePath, "source-path", "", "path to ftracker source")
}
