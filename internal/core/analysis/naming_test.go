package analysis

import (
	"strings"
	"testing"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

func TestFallbackNameResume(t *testing.T) {
	text := "John Smith\nSoftware Engineer with 8 years of experience in Python"
	e := domain.ExtractedEntities{Technologies: []string{"Python"}}

	got := FallbackName(text, e, domain.CategoryResume, ".pdf")
	want := "resume-john-smith-software-engineer-python-8yrs.pdf"
	if got != want {
		t.Errorf("FallbackName = %q, want %q", got, want)
	}
}

func TestFallbackNameResumeRejectsFalsePositiveNames(t *testing.T) {
	text := "Professional Summary\nDeveloper with strong delivery record"
	got := FallbackName(text, domain.ExtractedEntities{}, domain.CategoryResume, ".pdf")

	if !strings.HasPrefix(got, "resume-developer") {
		t.Errorf("FallbackName = %q, want the profession, not a section heading as a person name", got)
	}
}

func TestFallbackNameProposal(t *testing.T) {
	e := domain.ExtractedEntities{
		Technologies: []string{"AI", "Python", "React"},
		Company:      "Acme Corporation",
		Budget:       "$95000",
	}

	got := FallbackName("", e, domain.CategoryProjectProposal, ".txt")
	want := "project-proposal-ai-python-acme-corp-95k.txt"
	if got != want {
		t.Errorf("FallbackName = %q, want %q", got, want)
	}
}

func TestFallbackNameInvoice(t *testing.T) {
	e := domain.ExtractedEntities{
		Company:       "Apple",
		InvoiceNumber: "INV-001",
	}

	got := FallbackName("Invoice for a MacBook Pro 16", e, domain.CategoryInvoice, ".pdf")
	want := "invoice-apple-macbook-inv-001.pdf"
	if got != want {
		t.Errorf("FallbackName = %q, want %q", got, want)
	}
}

func TestFallbackNameMeeting(t *testing.T) {
	got := FallbackName("Standup notes", domain.ExtractedEntities{}, domain.CategoryMeetingNotes, ".md")
	want := "meeting-notes-standup.md"
	if got != want {
		t.Errorf("FallbackName = %q, want %q", got, want)
	}
}

func TestFallbackNameReportWithYear(t *testing.T) {
	got := FallbackName("Quarterly report for 2025", domain.ExtractedEntities{}, domain.CategoryReport, ".docx")
	want := "quarterly-report-2025.docx"
	if got != want {
		t.Errorf("FallbackName = %q, want %q", got, want)
	}
}

func TestFallbackNameGarbageInput(t *testing.T) {
	got := FallbackName("!!! ???", domain.ExtractedEntities{}, domain.CategoryDocument, ".txt")
	if got != "document.txt" {
		t.Errorf("FallbackName = %q, want document.txt", got)
	}
}

func TestFallbackNameUnknownCategoryEmptyText(t *testing.T) {
	got := FallbackName("", domain.ExtractedEntities{}, domain.CategoryUnknown, ".bin")
	if got != "document.bin" {
		t.Errorf("FallbackName = %q, want document.bin", got)
	}
}

// The namer is total: any input yields a usable, bounded, sanitized name
// ending in the original extension.
func TestFallbackNameProperties(t *testing.T) {
	inputs := []struct {
		text     string
		category domain.Category
	}{
		{strings.Repeat("Analysis Strategy Planning ", 40), domain.CategoryDocument},
		{"résumé für Jürgen Müß", domain.CategoryResume},
		{"a", domain.CategoryInvoice},
		{"", domain.CategoryContract},
	}

	for _, in := range inputs {
		got := FallbackName(in.text, domain.ExtractedEntities{}, in.category, ".txt")
		base := strings.TrimSuffix(got, ".txt")

		if !strings.HasSuffix(got, ".txt") {
			t.Errorf("%q: name %q lost the extension", in.text, got)
		}
		if len(base) < minNameLen {
			t.Errorf("%q: base %q shorter than %d", in.text, base, minNameLen)
		}
		if len(base) > maxNameLen {
			t.Errorf("%q: base %q longer than %d", in.text, base, maxNameLen)
		}
		if sanitizeName(base) != base {
			t.Errorf("%q: base %q not fully sanitized", in.text, base)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello world!", "helloworld"},
		{"a--b---c", "a-b-c"},
		{"-edges-", "edges"},
		{"Mixed_Case.File", "MixedCaseFile"},
	}
	for _, tc := range cases {
		if got := sanitizeName(tc.in); got != tc.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateAtBoundary(t *testing.T) {
	name := "quarterly-report-revenue-analysis-for-stakeholders"

	got := truncateAtBoundary(name, 20)
	if len(got) > 20 {
		t.Errorf("len = %d, want <= 20", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated name %q ends with a hyphen", got)
	}
	if got != "quarterly-report" {
		t.Errorf("truncateAtBoundary = %q, want cut back to the previous hyphen", got)
	}

	if got := truncateAtBoundary("short", 25); got != "short" {
		t.Errorf("truncateAtBoundary(short) = %q, want unchanged", got)
	}
}
