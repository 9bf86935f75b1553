package files

import (
	"fmt"
	"keyword-index/indexer/core"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// written term lists are world-readable, unlike CreateTemp files
const termsFileMode = 0o644

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadDocument returns the whole file with line endings normalized to "\n".
// Files larger than maxSize bytes are rejected before reading.
func ReadDocument(path string, maxSize int) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat document: %w", err)
	}
	if info.Size() > int64(maxSize) {
		return "", fmt.Errorf("%s is %d bytes, limit %d: %w", path, info.Size(), maxSize, core.ErrTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return newlines.Replace(string(data)), nil
}

func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// WriteTerms writes one term per line. The output replaces path only after
// every term has been written.
func WriteTerms(path string, terms []string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	sep := lineSeparator()
	var b strings.Builder
	for _, term := range terms {
		b.WriteString(term)
		b.WriteString(sep)
	}
	if _, err = tmp.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write terms: %w", err)
	}
	if err = tmp.Chmod(termsFileMode); err != nil {
		return fmt.Errorf("failed to set output mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace output: %w", err)
	}
	return nil
}
