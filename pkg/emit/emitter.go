// Package emit writes the rendered brief representations to disk.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed output filenames. Downstream tooling keys off these names, so they
// are a compatibility contract, not a preference.
const (
	DocumentFilename = "project-brief.md"
	RecordFilename   = "project-brief.json"
)

// Result carries the absolute paths of the written files.
type Result struct {
	DocumentPath string
	RecordPath   string
}

// Write stores the markdown document and JSON record under dir, overwriting
// existing files of the same name.
func Write(dir string, document, record []byte) (Result, error) {
	docPath, err := filepath.Abs(filepath.Join(dir, DocumentFilename))
	if err != nil {
		return Result{}, fmt.Errorf("emit: resolve %s: %w", DocumentFilename, err)
	}
	recordPath, err := filepath.Abs(filepath.Join(dir, RecordFilename))
	if err != nil {
		return Result{}, fmt.Errorf("emit: resolve %s: %w", RecordFilename, err)
	}

	if err := os.WriteFile(docPath, document, 0o644); err != nil {
		return Result{}, fmt.Errorf("emit: write %s: %w", docPath, err)
	}
	if err := os.WriteFile(recordPath, record, 0o644); err != nil {
		return Result{}, fmt.Errorf("emit: write %s: %w", recordPath, err)
	}

	return Result{DocumentPath: docPath, RecordPath: recordPath}, nil
}
