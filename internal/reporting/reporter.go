// File: internal/reporting/reporter.go
package reporting

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/algolens/algolens/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reporter defines the interface for writing analysis results to an output.
type Reporter interface {
	// Write serializes a single analysis result.
	Write(result *schemas.AnalyzeResponse) error
	// Close finalizes the report and closes any underlying resources.
	Close() error
}

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// New creates a JSON reporter writing to outputPath, or to stdout when the
// path is empty or "stdout".
func New(outputPath string) (Reporter, error) {
	if outputPath == "" || outputPath == "stdout" {
		return &jsonReporter{writer: &nopWriteCloser{os.Stdout}}, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return &jsonReporter{writer: f}, nil
}

// jsonReporter writes one indented JSON document per result.
type jsonReporter struct {
	writer io.WriteCloser
}

// NewJSONReporter wraps an existing writer; it takes ownership of it.
func NewJSONReporter(w io.WriteCloser) Reporter {
	return &jsonReporter{writer: w}
}

func (r *jsonReporter) Write(result *schemas.AnalyzeResponse) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode analysis result: %w", err)
	}
	return nil
}

func (r *jsonReporter) Close() error {
	return r.writer.Close()
}
