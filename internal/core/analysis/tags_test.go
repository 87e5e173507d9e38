package analysis

import (
	"reflect"
	"testing"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

func TestTagsProposal(t *testing.T) {
	e := domain.ExtractedEntities{
		Budget:       "$95000",
		Amount:       "$95000",
		Currency:     "USD",
		TeamSize:     "5 developers",
		Deadline:     "March 2025",
		Technologies: []string{"AI", "Python"},
		Company:      "Acme Corp",
	}
	got := Tags("project proposal with budget details", e)

	want := []string{
		"budget-95k",
		"team-5-developers",
		"deadline-march-2025",
		"tech-ai",
		"tech-python",
		"document-type-proposal",
		"contains-financial-data",
		"vendor-acme-corp",
		"currency-usd",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestTagsSmallBudgetKeepsExactAmount(t *testing.T) {
	got := Tags("", domain.ExtractedEntities{Budget: "$5000"})
	if !reflect.DeepEqual(got, []string{"budget-5000"}) {
		t.Errorf("tags = %v, want [budget-5000]", got)
	}
}

func TestTagsInvoice(t *testing.T) {
	e := domain.ExtractedEntities{
		Company:       "Apple",
		InvoiceNumber: "INV-001",
	}
	got := Tags("invoice for hardware", e)

	want := []string{
		"document-type-invoice",
		"vendor-apple",
		"has-invoice-number",
		"requires-accounting-review",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestTagsPurchaseOrder(t *testing.T) {
	got := Tags("", domain.ExtractedEntities{PONumber: "PO-7788"})
	want := []string{"has-purchase-order", "vendor-transaction"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestTagsEmpty(t *testing.T) {
	if got := Tags("plain text with nothing of note", domain.ExtractedEntities{}); len(got) != 0 {
		t.Errorf("tags = %v, want none", got)
	}
}

func TestTagsDeduplicated(t *testing.T) {
	got := Tags("proposal proposal proposal", domain.ExtractedEntities{})
	if !reflect.DeepEqual(got, []string{"document-type-proposal"}) {
		t.Errorf("tags = %v, want a single proposal tag", got)
	}
}
