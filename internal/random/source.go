// Package random generates sensor data for manual runs and tests.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
)

// rnd is seeded from crypto/rand once per process.
// Not safe for concurrent use.
var rnd = func() *mathrand.Rand {
	var buf [8]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		panic(err)
	}
	return mathrand.New(mathrand.NewSource(int64(binary.LittleEndian.Uint64(buf[:]))))
}()
