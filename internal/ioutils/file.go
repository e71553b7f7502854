// Package ioutils provides small file system helpers for artstream.
package ioutils

import (
	"fmt"
	"os"
)

// AppendFile appends data to a file, creating it with mode 0644 if needed.
//
// The importer uses this to add newly converted records to an existing
// database without rewriting it.
func AppendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
