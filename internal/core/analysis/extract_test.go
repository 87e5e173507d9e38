package analysis

import (
	"reflect"
	"testing"
)

func TestExtractProposalEntities(t *testing.T) {
	text := "Project budget: $150,000. Team: 5 developers. Deadline: March 2025. " +
		"Client: Acme Corp. Invoice #INV-2024-001. Built with Python and React."

	e := Extract(text)

	if e.Budget != "$150000" {
		t.Errorf("budget = %q, want $150000", e.Budget)
	}
	if e.Amount != "$150000" {
		t.Errorf("amount = %q, want $150000", e.Amount)
	}
	if e.Currency != "USD" {
		t.Errorf("currency = %q, want USD", e.Currency)
	}
	if e.TeamSize != "5 developers" {
		t.Errorf("teamSize = %q, want 5 developers", e.TeamSize)
	}
	if e.Deadline != "March 2025" {
		t.Errorf("deadline = %q, want March 2025", e.Deadline)
	}
	if e.Company != "Acme Corp" {
		t.Errorf("company = %q, want Acme Corp", e.Company)
	}
	if e.InvoiceNumber != "INV-2024-001" {
		t.Errorf("invoiceNumber = %q, want INV-2024-001", e.InvoiceNumber)
	}
	if !reflect.DeepEqual(e.Technologies, []string{"React", "Python"}) {
		t.Errorf("technologies = %v, want vocabulary order [React Python]", e.Technologies)
	}
}

func TestExtractEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		e := Extract(text)
		if !e.Empty() {
			t.Errorf("Extract(%q) = %+v, want all fields unset", text, e)
		}
	}
}

func TestExtractRejectsSmallBudget(t *testing.T) {
	e := Extract("Lunch total: $500 for the team outing")
	if e.Budget != "" {
		t.Errorf("budget = %q, want unset for amounts under 1000", e.Budget)
	}
}

func TestExtractRejectsOutOfRangeTeamSize(t *testing.T) {
	if e := Extract("An audience of 500 people attended"); e.TeamSize != "" {
		t.Errorf("teamSize = %q, want unset above 100", e.TeamSize)
	}
	if e := Extract("We had 0 developers available"); e.TeamSize != "" {
		t.Errorf("teamSize = %q, want unset below 1", e.TeamSize)
	}
}

func TestExtractRejectsOverlongCompany(t *testing.T) {
	e := Extract("Client: Extraordinarily Long Enterprise Identifier")
	if e.Company != "" {
		t.Errorf("company = %q, want unset when the capture exceeds 20 characters", e.Company)
	}
}

func TestExtractTechnologyNormalizationAndCap(t *testing.T) {
	e := Extract("stack: ml and aws")
	if !reflect.DeepEqual(e.Technologies, []string{"ML", "AWS"}) {
		t.Errorf("technologies = %v, want acronyms upper-cased", e.Technologies)
	}

	e = Extract("react python docker kubernetes azure gcp")
	if len(e.Technologies) != 4 {
		t.Errorf("technologies = %v, want capped at 4", e.Technologies)
	}
}

func TestExtractPurchaseOrder(t *testing.T) {
	e := Extract("Purchase Order: PO-7788 approved by finance")
	if e.PONumber != "PO-7788" {
		t.Errorf("poNumber = %q, want PO-7788", e.PONumber)
	}
}

func TestExtractProduct(t *testing.T) {
	e := Extract("Invoice for one MacBook Pro, 16 inch")
	if e.Product != "Macbook Pro" {
		t.Errorf("product = %q, want Macbook Pro", e.Product)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	text := "Project budget: $95,000. Team: 3 developers. Client: Acme Corp."
	first := Extract(text)
	second := Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction diverged:\n%+v\n%+v", first, second)
	}
}
