package benchmark

import (
	"time"
)

// Phase identifies the write or read half of a run.
type Phase string

const (
	PhaseWrite Phase = "write"
	PhaseRead  Phase = "read"
)

// AccessSequential is the only read access pattern: each read call continues
// where the previous one stopped, advancing by the bytes actually read.
const AccessSequential = "sequential"

// FileTiming is the measurement of one file in one phase.
type FileTiming struct {
	Path         string        `json:"path"`
	Phase        Phase         `json:"phase"`
	ChunkSize    int64         `json:"chunk_size_bytes"`
	Cycles       int           `json:"cycles"`
	Bytes        int64         `json:"bytes"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	AverageNs    float64       `json:"average_ns"`
	Throughput   float64       `json:"bytes_per_second"`
	Unmeasurable bool          `json:"unmeasurable,omitempty"`
}

// PhaseStats summarizes the per-file throughputs of one phase.
type PhaseStats struct {
	Mean         float64      `json:"mean_bytes_per_second"`
	Min          float64      `json:"min_bytes_per_second"`
	Max          float64      `json:"max_bytes_per_second"`
	Measured     int          `json:"measured_files"`
	Unmeasured   int          `json:"unmeasurable_files"`
	Unmeasurable bool         `json:"unmeasurable,omitempty"`
	Files        []FileTiming `json:"files"`
}

// Report is the aggregate result of a run.
type Report struct {
	Iterations      int           `json:"iterations"`
	WriteBufferSize int64         `json:"write_buffer_size"`
	ReadBufferSize  int64         `json:"read_buffer_size"`
	TotalBufferSize int64         `json:"total_buffer_size"`
	Fill            string        `json:"fill"`
	AccessPattern   string        `json:"access_pattern"`
	Duration        time.Duration `json:"duration_ns"`
	Write           PhaseStats    `json:"write"`
	Read            PhaseStats    `json:"read"`
}
