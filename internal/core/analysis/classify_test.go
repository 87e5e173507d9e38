package analysis

import (
	"testing"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name        string
		text        string
		entities    domain.ExtractedEntities
		category    domain.Category
		subcategory string
	}{
		{
			name: "strong resume with engineering signal",
			text: "Professional Summary\nWork Experience\nEducation\nSoftware Engineer at Acme",
			category:    domain.CategoryResume,
			subcategory: "software-engineer",
		},
		{
			name: "strong resume without engineering signal",
			text: "Professional Summary\nWork Experience\nEducation\nCertifications",
			category:    domain.CategoryResume,
			subcategory: "professional",
		},
		{
			name: "likely resume with two indicators",
			text: "Career Objective\nEmployment History for the last decade",
			category:    domain.CategoryResume,
			subcategory: "professional",
		},
		{
			name:        "ai proposal",
			text:        "Project Proposal: recommendation platform",
			entities:    domain.ExtractedEntities{Technologies: []string{"AI"}},
			category:    domain.CategoryProjectProposal,
			subcategory: "ai-development",
		},
		{
			name:        "software proposal",
			text:        "Proposal: new customer portal",
			entities:    domain.ExtractedEntities{Technologies: []string{"React"}},
			category:    domain.CategoryProjectProposal,
			subcategory: "software-development",
		},
		{
			name:        "invoice with enough indicators",
			text:        "Bill To: Acme Corp\nAmount Due: $4,500\nInvoice Date: 2024-11-02",
			category:    domain.CategoryInvoice,
			subcategory: "vendor-invoice",
		},
		{
			name:        "meeting notes",
			text:        "Standup notes for the platform team",
			category:    domain.CategoryMeetingNotes,
			subcategory: "team-meeting",
		},
		{
			name:        "quarterly report",
			text:        "Q3 Report\nExecutive Summary\nRevenue grew quarterly",
			category:    domain.CategoryReport,
			subcategory: "quarterly-report",
		},
		{
			name:        "business report via findings",
			text:        "Our findings indicate improved retention",
			category:    domain.CategoryReport,
			subcategory: "business-report",
		},
		{
			name:        "contract",
			text:        "This document sets out the terms and conditions of service",
			category:    domain.CategoryContract,
			subcategory: "legal-document",
		},
		{
			name:        "code documentation",
			text:        "import the module and call the function to start",
			category:    domain.CategoryCode,
			subcategory: "documentation",
		},
		{
			name:        "default",
			text:        "Some everyday text about nothing in particular",
			category:    domain.CategoryDocument,
			subcategory: "general",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category, subcategory := Categorize(tc.text, tc.entities)
			if category != tc.category || subcategory != tc.subcategory {
				t.Errorf("Categorize = %s/%s, want %s/%s", category, subcategory, tc.category, tc.subcategory)
			}
		})
	}
}

// Resume indicators outrank a misleading invoice mention in the same text.
func TestCategorizeContentOverridesMisleadingKeywords(t *testing.T) {
	text := "Professional Summary\nWork Experience\nTechnical Skills\nAttached invoice for relocation"
	category, _ := Categorize(text, domain.ExtractedEntities{})
	if category != domain.CategoryResume {
		t.Errorf("category = %s, want resume to win over a stray invoice mention", category)
	}
}

func TestCategorizeSingleInvoiceIndicatorIsNotEnough(t *testing.T) {
	category, subcategory := Categorize("The vendor sent a note", domain.ExtractedEntities{})
	if category != domain.CategoryDocument || subcategory != "general" {
		t.Errorf("Categorize = %s/%s, want document/general", category, subcategory)
	}
}
