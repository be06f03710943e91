package fork

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

type BackgroundProcess struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer
	done   chan struct{}
	err    error
}

// NewBackgroundProcess returns new unstarted background process instance.
func NewBackgroundProcess(ctx context.Context, command string, opts ...ProcessOpt) *BackgroundProcess {
	p := &BackgroundProcess{
		cmd:  exec.CommandContext(ctx, command),
		done: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.stdout = new(buffer)
	p.cmd.Stdout = p.stdout
	p.stderr = new(buffer)
	p.cmd.Stderr = p.stderr

	return p
}

// Start attempts to create OS process and start command execution.
func (p *BackgroundProcess) Start(ctx context.Context) error {
	startChan := make(chan error, 1)
	go func() {
		startChan <- p.cmd.Start()
	}()

	select {
	case err := <-startChan:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	go func() {
		p.err = p.cmd.Wait()
		close(p.done)
	}()
	return nil
}

// Wait blocks until process exits and returns its exit code.
// A non-zero exit code is not an error; context expiration is.
func (p *BackgroundProcess) Wait(ctx context.Context) (exitCode int, err error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	if p.err != nil && !errors.As(p.err, &exitErr) {
		return -1, p.err
	}
	return p.cmd.ProcessState.ExitCode(), nil
}

// Stdout returns everything process has written to stdout so far.
func (p *BackgroundProcess) Stdout(ctx context.Context) []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything process has written to stderr so far.
func (p *BackgroundProcess) Stderr(ctx context.Context) []byte {
	return p.stderr.Bytes()
}

// Stop attempts to send given signals to process one by one.
// After first successful signal attempt exit code of process will be returned
func (p *BackgroundProcess) Stop(signals ...os.Signal) (exitCode int, err error) {
	for _, sig := range signals {
		err = p.cmd.Process.Signal(sig)
		if err == nil {
			break
		}
	}

	if err != nil {
		return -1, fmt.Errorf("error sending signal to process: %w", err)
	}

	<-p.done
	return p.cmd.ProcessState.ExitCode(), nil
}

// String returns a human-readable representation of process command.
func (p *BackgroundProcess) String() string {
	return p.cmd.String()
}
