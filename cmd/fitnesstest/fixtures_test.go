package main

import (
	"os"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
)

const runProcessTimeout = time.Second * 10

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.t.Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func BinaryPath(e *Env) string {
	return ExistPath(e, flagBinaryPath)
}

// WorkDir returns a temporary directory removed after the test
func WorkDir(e *Env) string {
	return fixenv.CacheWithCleanup(e, "workdir", nil, func() (string, fixenv.FixtureCleanupFunc, error) {
		dir, err := os.MkdirTemp("", "ftracker-*")
		if err != nil {
			return "", nil, err
		}
		e.Logf("Создана рабочая директория %q", dir)
		cleanup := func() {
			_ = os.RemoveAll(dir)
		}
		return dir, cleanup, nil
	})
}

// ProcessResult is what a finished ftracker run left behind
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// RunProcess runs ftracker to completion and returns its output
func RunProcess(e *Env, opts ...fork.ProcessOpt) ProcessResult {
	ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
	defer cancel()

	opts = append([]fork.ProcessOpt{fork.WithDir(WorkDir(e))}, opts...)
	p := fork.NewBackgroundProcess(ctx, BinaryPath(e), opts...)

	e.Logf("Запускаю %q", p)
	if err := p.Start(ctx); err != nil {
		e.Fatalf("Невозможно запустить процесс командой %q: %v", p, err)
	}

	exitCode, err := p.Wait(ctx)
	if err != nil {
		e.Fatalf("Не удалось дождаться завершения процесса %q: %v", p, err)
	}

	res := ProcessResult{
		ExitCode: exitCode,
		Stdout:   string(p.Stdout(ctx)),
		Stderr:   string(p.Stderr(ctx)),
	}
	if len(res.Stderr) > 0 {
		e.Logf("Получен STDERR лог процесса:\n\n%s", res.Stderr)
	}
	return res
}
