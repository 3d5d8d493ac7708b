// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// Status classifies what happened to one output file.
type Status int

const (
	// Written means the file was created or replaced.
	Written Status = iota
	// Unchanged means the file already had the generated content.
	Unchanged
	// Drift means check mode found a file that would change.
	Drift
)

// Writer lands generated files on disk. Files whose content is already
// current are left untouched; in check mode nothing is written at all and
// drift is only recorded.
type Writer struct {
	Root  string
	Check bool

	written   []string
	unchanged []string
	drifted   []string
	bytes     uint64
}

// Write puts data at relPath under the writer root.
func (w *Writer) Write(relPath string, data []byte) (Status, error) {
	path := filepath.Join(w.Root, relPath)

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		w.unchanged = append(w.unchanged, relPath)
		return Unchanged, nil
	}

	if w.Check {
		w.drifted = append(w.drifted, relPath)
		log.Debugf("drift: %s", relPath)
		return Drift, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:mnd
		return 0, fmt.Errorf("failed to write %s: %w", relPath, err)
	}

	w.written = append(w.written, relPath)
	w.bytes += uint64(len(data))
	log.Debugf("wrote %s (%s)", relPath, humanize.Bytes(uint64(len(data))))
	return Written, nil
}

// Drifted returns the files check mode flagged.
func (w *Writer) Drifted() []string { return w.drifted }

// Summary renders a one-line account of the run.
func (w *Writer) Summary() string {
	if w.Check {
		return fmt.Sprintf("%d files current, %d out of date",
			len(w.unchanged), len(w.drifted))
	}
	return fmt.Sprintf("%d files written (%s), %d unchanged",
		len(w.written), humanize.Bytes(w.bytes), len(w.unchanged))
}
