package sensor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError reports a line that is not a valid package.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Reader reads packages one per line:
//
//	# comment
//	SWM 720 1 80 25 40
//	RUN 15000 1 75
//
// Blank lines and lines starting with '#' are skipped.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// MaxLineSize is the longest line Reader accepts, in bytes.
// A longer line stops reading with bufio.ErrTooLong.
const MaxLineSize = 1 << 20

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Reader{scanner: scanner}
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next package or io.EOF when the input is exhausted.
// A malformed line yields *SyntaxError; reading may continue with the following line.
func (r *Reader) Next() (Package, error) {
	for r.scanner.Scan() {
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := parseLine(text)
		if err != nil {
			return Package{}, &SyntaxError{Line: r.line, Err: err}
		}
		return p, nil
	}

	if err := r.scanner.Err(); err != nil {
		return Package{}, fmt.Errorf("cannot read packages: %w", err)
	}
	return Package{}, io.EOF
}

// ReadAll reads every package from r, stopping at the first error.
func ReadAll(r io.Reader) ([]Package, error) {
	var res []Package
	pr := NewReader(r)
	for {
		p, err := pr.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
}

func parseLine(text string) (Package, error) {
	fields := strings.Fields(text)

	data := make([]float64, 0, len(fields)-1)
	for _, field := range fields[1:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Package{}, fmt.Errorf("invalid reading %q", field)
		}
		data = append(data, v)
	}

	return Package{Kind: fields[0], Data: data}, nil
}
