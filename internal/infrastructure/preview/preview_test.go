package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSamplePlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proposal.txt")
	content := "Project Proposal: Analytics Platform\nBudget: $50,000\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	sample, err := NewExtractor(0).Sample(path, dir)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	if sample.OriginalName != "proposal.txt" {
		t.Errorf("originalName = %q", sample.OriginalName)
	}
	if sample.Extension != ".txt" {
		t.Errorf("extension = %q", sample.Extension)
	}
	if sample.SizeBytes != int64(len(content)) {
		t.Errorf("sizeBytes = %d, want %d", sample.SizeBytes, len(content))
	}
	if !strings.Contains(sample.PreviewText, "Budget: $50,000") {
		t.Errorf("previewText = %q", sample.PreviewText)
	}
	if sample.BaseDirectory != dir {
		t.Errorf("baseDirectory = %q", sample.BaseDirectory)
	}
}

func TestSampleBoundsPreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("a", 10000)), 0o644); err != nil {
		t.Fatal(err)
	}

	sample, err := NewExtractor(128).Sample(path, "")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(sample.PreviewText) > 128 {
		t.Errorf("preview = %d bytes, want <= 128", len(sample.PreviewText))
	}
	if sample.SizeBytes != 10000 {
		t.Errorf("sizeBytes = %d, want the full file size", sample.SizeBytes)
	}
}

func TestSampleUnsupportedFormatHasEmptyPreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0o644); err != nil {
		t.Fatal(err)
	}

	sample, err := NewExtractor(0).Sample(path, "")
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if sample.PreviewText != "" {
		t.Errorf("previewText = %q, want empty", sample.PreviewText)
	}
	if sample.Extension != ".png" {
		t.Errorf("extension = %q", sample.Extension)
	}
}

func TestSampleMissingFile(t *testing.T) {
	if _, err := NewExtractor(0).Sample(filepath.Join(t.TempDir(), "absent.txt"), ""); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSampleDirectory(t *testing.T) {
	if _, err := NewExtractor(0).Sample(t.TempDir(), ""); err == nil {
		t.Fatal("expected an error for a directory")
	}
}

func TestTruncateValidUTF8(t *testing.T) {
	s := "héllo"
	cut := s[:len(s)-4]
	if got := truncateValidUTF8(cut); !strings.HasPrefix("héllo", got) {
		t.Errorf("truncateValidUTF8(%q) = %q", cut, got)
	}
}
