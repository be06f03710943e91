package fork

import (
	"io"
	"os"
)

type ProcessOpt = func(p *BackgroundProcess)

// WithEnv добавляет переменные окружения вида KEY=VALUE процессу
// поверх окружения текущего процесса
func WithEnv(env ...string) ProcessOpt {
	return func(p *BackgroundProcess) {
		if p.cmd.Env == nil {
			p.cmd.Env = os.Environ()
		}
		p.cmd.Env = append(p.cmd.Env, env...)
	}
}

// WithArgs добавляет процессу аргументы командной строки
func WithArgs(args ...string) ProcessOpt {
	return func(p *BackgroundProcess) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}

// WithStdin подключает r к стандартному вводу процесса
func WithStdin(r io.Reader) ProcessOpt {
	return func(p *BackgroundProcess) {
		p.cmd.Stdin = r
	}
}

// WithDir задает рабочую директорию процесса
func WithDir(dir string) ProcessOpt {
	return func(p *BackgroundProcess) {
		p.cmd.Dir = dir
	}
}
