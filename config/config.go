package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrInvalidConfig is returned for size settings that cannot produce a valid run.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultIterations      = 20
	DefaultWriteBufferSize = 16_000_000
	DefaultReadBufferSize  = 16_000_000
	DefaultTotalBufferSize = 64 * DefaultWriteBufferSize
)

// Fill policies for the write payload.
const (
	FillRandom  = "random"
	FillPattern = "pattern"
)

// Config holds the parameters of one benchmark run.
type Config struct {
	Iterations      int           // Number of files written and read
	WriteBufferSize int64         // Bytes per timed write call
	ReadBufferSize  int64         // Bytes per timed read call
	TotalBufferSize int64         // Bytes written to each file
	Dir             string        // Directory holding the benchmark files
	Settle          time.Duration // Untimed pause between file operations
	Warmup          bool          // Untimed priming write before measuring
	Fill            string        // Payload policy, FillRandom or FillPattern
	DropCache       bool          // Drop cached pages before each read phase
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Iterations:      DefaultIterations,
		WriteBufferSize: DefaultWriteBufferSize,
		ReadBufferSize:  DefaultReadBufferSize,
		TotalBufferSize: DefaultTotalBufferSize,
		Dir:             ".",
		Fill:            FillRandom,
	}
}

// ParseSize parses a human readable size such as "16MB" or "4MiB" into bytes.
func ParseSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", s, err)
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("%w: size %q too large", ErrInvalidConfig, s)
	}
	return int64(n), nil
}

// WriteCycles is the number of timed write calls per file.
func (c Config) WriteCycles() int {
	return cycles(c.TotalBufferSize, c.WriteBufferSize)
}

// ReadCycles is the number of timed read calls per file.
func (c Config) ReadCycles() int {
	return cycles(c.TotalBufferSize, c.ReadBufferSize)
}

func cycles(total, chunk int64) int {
	if chunk <= 0 {
		return 0
	}
	return int(total / chunk)
}

// Validate rejects configurations that would execute zero cycles or leave a
// partial chunk at the end of a file.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	}
	sizes := []struct {
		name string
		v    int64
	}{
		{"write buffer size", c.WriteBufferSize},
		{"read buffer size", c.ReadBufferSize},
		{"total buffer size", c.TotalBufferSize},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, s.name, s.v)
		}
	}
	if err := checkChunk("write", c.TotalBufferSize, c.WriteBufferSize); err != nil {
		return err
	}
	if err := checkChunk("read", c.TotalBufferSize, c.ReadBufferSize); err != nil {
		return err
	}
	if c.Settle < 0 {
		return fmt.Errorf("%w: settle pause must not be negative", ErrInvalidConfig)
	}
	switch c.Fill {
	case FillRandom, FillPattern:
	default:
		return fmt.Errorf("%w: unknown fill policy %q", ErrInvalidConfig, c.Fill)
	}
	return nil
}

func checkChunk(phase string, total, chunk int64) error {
	if total < chunk {
		return fmt.Errorf("%w: total buffer size %d is smaller than %s buffer size %d, zero cycles",
			ErrInvalidConfig, total, phase, chunk)
	}
	if total%chunk != 0 {
		return fmt.Errorf("%w: total buffer size %d is not a multiple of %s buffer size %d",
			ErrInvalidConfig, total, phase, chunk)
	}
	return nil
}
