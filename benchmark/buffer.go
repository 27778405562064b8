package benchmark

import (
	"encoding/binary"
	"math/rand/v2"

	"diskbench/config"
)

// NewPayload returns a write buffer of exactly size bytes.
//
// With config.FillRandom the bytes come from a ChaCha8 stream, so storage
// layers that compress or deduplicate see incompressible data. With
// config.FillPattern byte i is i%256, which such layers may shrink and so
// report higher rates.
func NewPayload(size int, fill string) []byte {
	buf := make([]byte, size)
	if fill == config.FillPattern {
		for i := range buf {
			buf[i] = byte(i % 256)
		}
		return buf
	}

	var seed [32]byte
	for i := 0; i < len(seed); i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], rand.Uint64())
	}
	src := rand.NewChaCha8(seed)
	i := 0
	for ; i+8 <= size; i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], src.Uint64())
	}
	if i < size {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], src.Uint64())
		copy(buf[i:], tail[:])
	}
	return buf
}
