package benchmark

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilePrefix starts the name of every file a run creates.
const FilePrefix = "diskbench-"

const maxNameAttempts = 16

// GenerateRandomName creates a random hex string of 2*length characters.
func GenerateRandomName(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// reserveFile creates a new empty file in dir whose name did not exist
// before, and remembers it for cleanup.
func (r *Runner) reserveFile(dir, tag string) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		suffix, err := GenerateRandomName(8)
		if err != nil {
			return "", fmt.Errorf("generate file name: %w", err)
		}
		path := filepath.Join(dir, fmt.Sprintf("%s%s-%s.tmp", FilePrefix, tag, suffix))

		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", opErr("create", path, err)
		}
		r.created = append(r.created, path)
		if err := f.Close(); err != nil {
			return "", opErr("create", path, err)
		}
		return path, nil
	}
	return "", opErr("create", filepath.Join(dir, FilePrefix+tag), fs.ErrExist)
}

// cleanup removes every file the run created. Files already gone are
// ignored; other failures are joined into the returned error.
func (r *Runner) cleanup() error {
	var errs []error
	for _, path := range r.created {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, opErr("remove", path, err))
			continue
		}
		r.logger.Debug("removed benchmark file", "path", path)
	}
	r.created = nil
	return errors.Join(errs...)
}
