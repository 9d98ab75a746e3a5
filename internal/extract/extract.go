// Package extract turns uploaded résumé files into plain text.
//
// Supported formats:
//   - .pdf  — text operators of every page content stream (pdfcpu)
//   - .docx — paragraphs of word/document.xml
//   - .txt  — UTF-8, falling back to Latin-1
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultMaxFileSize bounds the size of files accepted by Extract.
const DefaultMaxFileSize = 20 << 20

// ErrUnsupportedFormat is returned for file extensions without a reader.
var ErrUnsupportedFormat = errors.New("unsupported file type, please upload a PDF, DOCX, or TXT file")

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatTXT  Format = "txt"
)

// Extractor reads résumé files.
type Extractor struct {
	logger      *zap.Logger
	MaxFileSize int64
}

// New returns an Extractor. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger, MaxFileSize: DefaultMaxFileSize}
}

// Detect returns the format of name based on its extension.
func Detect(name string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch Format(ext) {
	case FormatPDF, FormatDocx, FormatTXT:
		return Format(ext), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Extract reads the file at path and returns its text.
func (e *Extractor) Extract(path string) (string, error) {
	if _, err := Detect(path); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if e.MaxFileSize > 0 && info.Size() > e.MaxFileSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), e.MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return e.FromBytes(filepath.Base(path), data)
}

// FromBytes extracts text from an in-memory upload named name.
func (e *Extractor) FromBytes(name string, data []byte) (string, error) {
	format, err := Detect(name)
	if err != nil {
		return "", err
	}

	e.logger.Debug("extracting text",
		zap.String("filename", name),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)),
	)

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDF(bytes.NewReader(data))
	case FormatDocx:
		text, err = extractDocx(data)
	case FormatTXT:
		text, err = decodeText(data)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s (%s): %w", name, format, err)
	}

	return text, nil
}
