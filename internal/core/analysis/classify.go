package analysis

import (
	"strings"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

// Classification is content-first by design: filenames and extensions are
// adversarial inputs (a resume saved as invoice_2024.pdf), so every rule
// demands a minimum density of genuine content indicators rather than a
// single keyword hit. The cascade is an ordered rule list evaluated top to
// bottom; the first rule whose score reaches its threshold wins.

type categoryRule struct {
	name      string
	score     func(lower string, e domain.ExtractedEntities) int
	threshold int
	resolve   func(lower string, e domain.ExtractedEntities) (domain.Category, string)
}

var categoryRules = []categoryRule{
	{
		// Evaluated first so strong resume content overrides anything a
		// misleading filename or extension would suggest.
		name:      "resume-strong",
		score:     resumeScore,
		threshold: 3,
		resolve: func(lower string, e domain.ExtractedEntities) (domain.Category, string) {
			if hasEngineeringSignal(lower, e) {
				return domain.CategoryResume, "software-engineer"
			}
			return domain.CategoryResume, "professional"
		},
	},
	{
		name:      "resume-likely",
		score:     resumeScore,
		threshold: 2,
		resolve: func(string, domain.ExtractedEntities) (domain.Category, string) {
			return domain.CategoryResume, "professional"
		},
	},
	{
		name:      "project-proposal",
		score:     phraseHit("project proposal", "proposal:"),
		threshold: 1,
		resolve: func(_ string, e domain.ExtractedEntities) (domain.Category, string) {
			if hasAITechnology(e) {
				return domain.CategoryProjectProposal, "ai-development"
			}
			return domain.CategoryProjectProposal, "software-development"
		},
	},
	{
		// A single "invoice" mention is not enough; the body must actually
		// look like an invoice.
		name:      "invoice",
		score:     invoiceScore,
		threshold: 2,
		resolve: func(string, domain.ExtractedEntities) (domain.Category, string) {
			return domain.CategoryInvoice, "vendor-invoice"
		},
	},
	{
		name:      "meeting-notes",
		score:     phraseHit("meeting", "standup", "agenda"),
		threshold: 1,
		resolve: func(string, domain.ExtractedEntities) (domain.Category, string) {
			return domain.CategoryMeetingNotes, "team-meeting"
		},
	},
	{
		name:      "report",
		score:     reportScore,
		threshold: 1,
		resolve: func(lower string, _ domain.ExtractedEntities) (domain.Category, string) {
			if strings.Contains(lower, "quarterly") {
				return domain.CategoryReport, "quarterly-report"
			}
			return domain.CategoryReport, "business-report"
		},
	},
	{
		name:      "contract",
		score:     phraseHit("contract", "agreement", "terms and conditions", "legal"),
		threshold: 1,
		resolve: func(string, domain.ExtractedEntities) (domain.Category, string) {
			return domain.CategoryContract, "legal-document"
		},
	},
	{
		name:      "code",
		score:     phraseHit("function", "class", "import", "def ", "const ", "var "),
		threshold: 1,
		resolve: func(string, domain.ExtractedEntities) (domain.Category, string) {
			return domain.CategoryCode, "documentation"
		},
	},
}

// Categorize classifies text into exactly one category with a subcategory.
// Deterministic and idempotent.
func Categorize(text string, e domain.ExtractedEntities) (domain.Category, string) {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if rule.score(lower, e) >= rule.threshold {
			return rule.resolve(lower, e)
		}
	}
	return domain.CategoryDocument, "general"
}

func resumeScore(lower string, _ domain.ExtractedEntities) int {
	return countIndicators(lower, Vocab().ResumeIndicators)
}

func invoiceScore(lower string, _ domain.ExtractedEntities) int {
	return countIndicators(lower, Vocab().InvoiceIndicators)
}

func reportScore(lower string, _ domain.ExtractedEntities) int {
	if strings.Contains(lower, "report") && strings.Contains(lower, "executive summary") {
		return 1
	}
	if strings.Contains(lower, "findings") {
		return 1
	}
	return 0
}

// phraseHit scores 1 when any of the phrases occurs in the text.
func phraseHit(phrases ...string) func(string, domain.ExtractedEntities) int {
	return func(lower string, _ domain.ExtractedEntities) int {
		for _, p := range phrases {
			if strings.Contains(lower, p) {
				return 1
			}
		}
		return 0
	}
}

func countIndicators(lower string, indicators []string) int {
	n := 0
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			n++
		}
	}
	return n
}

func hasEngineeringSignal(lower string, e domain.ExtractedEntities) bool {
	if strings.Contains(lower, "engineer") {
		return true
	}
	for _, tech := range e.Technologies {
		if strings.Contains(strings.ToLower(tech), "software") {
			return true
		}
	}
	return false
}

func hasAITechnology(e domain.ExtractedEntities) bool {
	for _, tech := range e.Technologies {
		if strings.Contains(strings.ToLower(tech), "ai") {
			return true
		}
	}
	return false
}
