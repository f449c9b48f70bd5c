// Package writer exposes sinks for generated .reg documents.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives one complete document.
type Sink interface {
	WriteDocument(doc []byte) error
}

// FileWriter writes a document to a filesystem path atomically, creating
// missing parent directories.
type FileWriter struct {
	Path string
	Perm os.FileMode // 0 means 0o644
}

// WriteDocument writes doc to the configured path via temp file + rename.
func (w *FileWriter) WriteDocument(doc []byte) error {
	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Temp file in the same directory keeps the rename atomic
	tmpFile, err := os.CreateTemp(dir, ".edidkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(doc); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if chmodErr := tmpFile.Chmod(perm); chmodErr != nil {
		return fmt.Errorf("chmod temp file: %w", chmodErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}

// StreamWriter copies a document to an io.Writer such as stdout.
type StreamWriter struct {
	W io.Writer
}

// WriteDocument writes doc to the stream.
func (w StreamWriter) WriteDocument(doc []byte) error {
	_, err := w.W.Write(doc)
	return err
}
