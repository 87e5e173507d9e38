// Package preview extracts a bounded plain-text excerpt from local files so
// the analysis pipeline can work from content instead of filenames.
package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

const DefaultMaxBytes = 4096

// Extractor reads a file and produces the content sample the analysis
// pipeline consumes. Unsupported formats yield a sample with empty preview
// text rather than an error; the pipeline still classifies from what it has.
type Extractor struct {
	maxBytes int
}

func NewExtractor(maxBytes int) *Extractor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Extractor{maxBytes: maxBytes}
}

// Sample builds a ContentSample for the file at path, with baseDir recorded
// as the organization root for folder suggestions.
func (e *Extractor) Sample(path, baseDir string) (domain.ContentSample, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.ContentSample{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.ContentSample{}, fmt.Errorf("preview %s: is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	text, err := e.text(path, ext)
	if err != nil {
		return domain.ContentSample{}, err
	}

	return domain.ContentSample{
		OriginalName:  filepath.Base(path),
		Extension:     ext,
		SizeBytes:     info.Size(),
		PreviewText:   text,
		BaseDirectory: baseDir,
	}, nil
}

func (e *Extractor) text(path, ext string) (string, error) {
	switch ext {
	case ".txt", ".md", ".csv", ".log", ".json", ".yaml", ".yml":
		return e.plainText(path)
	case ".pdf":
		return e.pdfText(path)
	case ".xlsx":
		return e.xlsxText(path)
	default:
		return "", nil
	}
}

func (e *Extractor) plainText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, e.maxBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return truncateValidUTF8(string(buf[:n])), nil
}

func (e *Extractor) pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
		if b.Len() >= e.maxBytes {
			break
		}
	}
	return e.bound(b.String()), nil
}

func (e *Extractor) xlsxText(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		b.WriteString(sheet)
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(strings.Join(row, " "))
			b.WriteString("\n")
			if b.Len() >= e.maxBytes {
				return e.bound(b.String()), nil
			}
		}
	}
	return e.bound(b.String()), nil
}

func (e *Extractor) bound(text string) string {
	if len(text) > e.maxBytes {
		text = text[:e.maxBytes]
	}
	return truncateValidUTF8(text)
}

// truncateValidUTF8 drops a trailing partial rune left by a byte-boundary cut.
func truncateValidUTF8(s string) string {
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}
