// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Writer writes NDJSON records. It is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	output  io.Writer
	encoder *json.Encoder
	count   int
	closers []func() error
}

// NewWriter creates a new NDJSON writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		output:  w,
		encoder: json.NewEncoder(w),
	}
}

// NewFileWriter creates a new NDJSON writer on filename. A ".gz" suffix
// selects gzip compression and ".zst" selects zstd. The caller must call
// Close to flush and close the file.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	var (
		out    io.Writer = file
		closer func() error
	)
	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz := gzip.NewWriter(file)
		out, closer = gz, gz.Close
	case strings.HasSuffix(filename, ".zst"):
		zw, err := zstd.NewWriter(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to start zstd stream: %w", err)
		}
		out, closer = zw, zw.Close
	}

	w := NewWriter(out)
	if closer != nil {
		w.closers = append(w.closers, closer)
	}
	w.closers = append(w.closers, file.Close)
	return w, nil
}

// Write writes a single record as one NDJSON line.
func (w *Writer) Write(record any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes any compressor and closes the file. It is a no-op for
// writers created with NewWriter.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var errs []error
	for _, c := range w.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	return errors.Join(errs...)
}
