package main

import (
	"fmt"
	"io"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a JSON logger writing to w.
// Every entry carries the run_id of the current invocation.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, errUsage)
	}

	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("cannot generate run id: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core).With(zap.String("run_id", runID.String())), nil
}
