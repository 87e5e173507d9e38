package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

// budgetTagThreshold separates "budget-95k" style tags from exact-amount tags.
const budgetTagThreshold = 10000

var digitsRE = regexp.MustCompile(`[0-9]+`)

// tagRule derives zero or more tags from the entities and text. The table is
// evaluated in order; the result behaves as a set with insertion order.
type tagRule func(lower string, e domain.ExtractedEntities) []string

var tagRules = []tagRule{
	budgetTags,
	teamTags,
	deadlineTags,
	technologyTags,
	documentTypeTags,
	companyTags,
	currencyTags,
	invoiceTags,
	purchaseOrderTags,
}

// Tags derives normalized, actionable tags from the extracted entities and
// the raw text. Duplicates are dropped; ordering is insertion order and
// carries no meaning.
func Tags(text string, e domain.ExtractedEntities) []string {
	lower := strings.ToLower(text)
	var out []string
	seen := make(map[string]bool)
	for _, rule := range tagRules {
		for _, tag := range rule(lower, e) {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

func budgetTags(_ string, e domain.ExtractedEntities) []string {
	if e.Budget == "" {
		return nil
	}
	raw := strings.ReplaceAll(strings.TrimPrefix(e.Budget, "$"), ",", "")
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	if amount >= budgetTagThreshold {
		return []string{fmt.Sprintf("budget-%dk", amount/1000)}
	}
	return []string{fmt.Sprintf("budget-%d", amount)}
}

func teamTags(_ string, e domain.ExtractedEntities) []string {
	if e.TeamSize == "" {
		return nil
	}
	n := digitsRE.FindString(e.TeamSize)
	if n == "" {
		return nil
	}
	return []string{fmt.Sprintf("team-%s-developers", n)}
}

func deadlineTags(_ string, e domain.ExtractedEntities) []string {
	if e.Deadline == "" {
		return nil
	}
	return []string{"deadline-" + slug(e.Deadline)}
}

func technologyTags(_ string, e domain.ExtractedEntities) []string {
	tags := make([]string, 0, len(e.Technologies))
	for _, tech := range e.Technologies {
		tags = append(tags, "tech-"+slug(tech))
	}
	return tags
}

func documentTypeTags(lower string, _ domain.ExtractedEntities) []string {
	var tags []string
	if strings.Contains(lower, "proposal") {
		tags = append(tags, "document-type-proposal")
	}
	if strings.Contains(lower, "invoice") {
		tags = append(tags, "document-type-invoice")
	}
	if strings.Contains(lower, "contract") {
		tags = append(tags, "document-type-contract")
	}
	if strings.Contains(lower, "budget") {
		tags = append(tags, "contains-financial-data")
	}
	return tags
}

func companyTags(_ string, e domain.ExtractedEntities) []string {
	if e.Company == "" {
		return nil
	}
	return []string{"vendor-" + slug(e.Company)}
}

func currencyTags(_ string, e domain.ExtractedEntities) []string {
	if e.Currency == "" {
		return nil
	}
	return []string{"currency-" + strings.ToLower(e.Currency)}
}

func invoiceTags(_ string, e domain.ExtractedEntities) []string {
	if e.InvoiceNumber == "" {
		return nil
	}
	return []string{"has-invoice-number", "requires-accounting-review"}
}

func purchaseOrderTags(_ string, e domain.ExtractedEntities) []string {
	if e.PONumber == "" {
		return nil
	}
	return []string{"has-purchase-order", "vendor-transaction"}
}

// slug lower-cases and hyphenates a free-form value for use inside a tag.
func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
