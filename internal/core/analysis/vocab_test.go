package analysis

import "testing"

func TestVocabParses(t *testing.T) {
	v := Vocab()

	if len(v.Technologies) == 0 {
		t.Error("technologies vocabulary is empty")
	}
	if len(v.ResumeIndicators) == 0 {
		t.Error("resume indicators vocabulary is empty")
	}
	if len(v.InvoiceIndicators) == 0 {
		t.Error("invoice indicators vocabulary is empty")
	}
	if len(v.FolderFallback) == 0 {
		t.Error("folder fallback table is empty")
	}
}

func TestFallbackFolderPath(t *testing.T) {
	cases := []struct{ category, want string }{
		{"invoice", "Finance/Invoices"},
		{"contract", "Legal/Contracts"},
		{"resume", "Career/Resume"},
		{"meeting-notes", "Work/Meetings"},
		{"report", "Work/Reports"},
		{"project-proposal", "Projects/Proposals"},
		{"code", "Projects/Code"},
		{"document", "Files"},
		{"unknown", "Files"},
		{"", "Files"},
	}
	for _, tc := range cases {
		if got := FallbackFolderPath(tc.category); got != tc.want {
			t.Errorf("FallbackFolderPath(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}
