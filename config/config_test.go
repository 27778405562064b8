package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 64, cfg.WriteCycles())
	assert.Equal(t, 64, cfg.ReadCycles())
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"16MB", 16_000_000},
		{"16MiB", 16 << 20},
		{"1GB", 1_000_000_000},
		{"4096", 4096},
		{"512 kB", 512_000},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSize("sixteen")
	assert.Error(t, err)
}

func TestCycles(t *testing.T) {
	cfg := Config{
		Iterations:      2,
		WriteBufferSize: 1_000_000,
		ReadBufferSize:  500_000,
		TotalBufferSize: 4_000_000,
		Fill:            FillPattern,
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.WriteCycles())
	assert.Equal(t, 8, cfg.ReadCycles())
}

func TestValidateRejects(t *testing.T) {
	base := Config{
		Iterations:      2,
		WriteBufferSize: 1_000_000,
		ReadBufferSize:  1_000_000,
		TotalBufferSize: 4_000_000,
		Fill:            FillRandom,
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"zero write size", func(c *Config) { c.WriteBufferSize = 0 }},
		{"negative read size", func(c *Config) { c.ReadBufferSize = -1 }},
		{"zero total", func(c *Config) { c.TotalBufferSize = 0 }},
		{"total below chunk", func(c *Config) { c.TotalBufferSize = 999_999 }},
		{"total not multiple", func(c *Config) { c.TotalBufferSize = 4_500_000 }},
		{"read not multiple", func(c *Config) { c.ReadBufferSize = 3_000_000 }},
		{"negative settle", func(c *Config) { c.Settle = -time.Millisecond }},
		{"unknown fill", func(c *Config) { c.Fill = "zeros" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestTotalBelowChunkHasZeroCycles(t *testing.T) {
	cfg := Config{
		Iterations:      1,
		WriteBufferSize: 2_000_000,
		ReadBufferSize:  2_000_000,
		TotalBufferSize: 1_000_000,
		Fill:            FillRandom,
	}
	assert.Equal(t, 0, cfg.WriteCycles())
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
