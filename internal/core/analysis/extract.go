package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

// Extraction applies an ordered pattern list per entity field: the first
// pattern that matches and passes the field's validity predicate wins, later
// patterns for that field are never tried. A failed validity check falls
// through to the next candidate pattern. Fields without a winning pattern
// stay unset.

const maxTechnologies = 4

var (
	budgetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)budget[:\s-]*\$?([0-9][0-9,]*)`),
		regexp.MustCompile(`(?i)project budget[:\s-]*\$?([0-9][0-9,]*)`),
		regexp.MustCompile(`(?i)total[:\s-]*\$?([0-9][0-9,]*)`),
		regexp.MustCompile(`\$([0-9][0-9,]*)`),
	}

	teamPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)team[:\s-]*([0-9]+)\s*(?:developers?|people|members?)`),
		regexp.MustCompile(`(?i)([0-9]+)\s*(?:developers?|people|members?)`),
		regexp.MustCompile(`(?i)team size[:\s-]*([0-9]+)`),
	}

	deadlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)deadline[:\s-]*([A-Za-z]+ [0-9]{4})`),
		regexp.MustCompile(`(?i)due[:\s-]*([A-Za-z]+ [0-9]{4})`),
		regexp.MustCompile(`(?i)completion[:\s-]*([A-Za-z]+ [0-9]{4})`),
	}

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)client[:\s-]*([A-Za-z][A-Za-z ]+)`),
		regexp.MustCompile(`(?i)company[:\s-]*([A-Za-z][A-Za-z ]+)`),
		regexp.MustCompile(`(?i)vendor[:\s-]*([A-Za-z][A-Za-z ]+)`),
	}

	invoicePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)invoice[:\s#-]*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)\binv[:\s#-]*([A-Z0-9-]+)`),
		regexp.MustCompile(`#([A-Za-z0-9-]{3,})`),
	}

	poPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:purchase order|po)[:\s#-]*([A-Z0-9-]+)`),
	}
)

// Extract pulls structured business entities from the preview text. It is
// deterministic and total: unmatched fields are left unset, never filled with
// placeholders.
func Extract(text string) domain.ExtractedEntities {
	var e domain.ExtractedEntities
	if strings.TrimSpace(text) == "" {
		return e
	}
	lower := strings.ToLower(text)

	if raw, ok := firstValidMatch(text, budgetPatterns, validBudget); ok {
		amount := "$" + strings.ReplaceAll(raw, ",", "")
		e.Budget = amount
		e.Amount = amount
		e.Currency = "USD"
	}

	if raw, ok := firstValidMatch(text, teamPatterns, validTeamSize); ok {
		e.TeamSize = raw + " developers"
	}

	if raw, ok := firstValidMatch(text, deadlinePatterns, nonEmpty); ok {
		e.Deadline = raw
	}

	e.Technologies = detectTechnologies(lower)

	if raw, ok := firstValidMatch(text, companyPatterns, validCompany); ok {
		e.Company = strings.TrimSpace(raw)
	}

	if product, ok := detectProduct(lower); ok {
		e.Product = product
	}

	if raw, ok := firstValidMatch(text, invoicePatterns, validIdentifier); ok {
		e.InvoiceNumber = raw
	}

	if raw, ok := firstValidMatch(text, poPatterns, validIdentifier); ok {
		e.PONumber = raw
	}

	return e
}

// firstValidMatch returns the first capture group of the first pattern whose
// match passes the validity predicate.
func firstValidMatch(text string, patterns []*regexp.Regexp, valid func(string) bool) (string, bool) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if valid(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// validBudget rejects currency-free small numbers: a match only counts as a
// budget when the numeric value is at least 1000.
func validBudget(raw string) bool {
	n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	return err == nil && n >= 1000
}

func validTeamSize(raw string) bool {
	n, err := strconv.Atoi(raw)
	return err == nil && n >= 1 && n <= 100
}

// validCompany rejects over-greedy captures that ran past a real name.
func validCompany(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed != "" && len(trimmed) <= 20
}

// validIdentifier filters out plain words the loose identifier patterns can
// capture: a real document number carries at least one digit.
func validIdentifier(raw string) bool {
	if len(raw) < 3 {
		return false
	}
	return strings.ContainsAny(raw, "0123456789")
}

func nonEmpty(raw string) bool {
	return raw != ""
}

// detectTechnologies matches the fixed vocabulary case-insensitively against
// the whole text, deduplicates, caps the list and normalizes capitalization:
// short acronyms upper-cased, everything else title-cased.
func detectTechnologies(lower string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, keyword := range Vocab().Technologies {
		if !strings.Contains(lower, keyword) {
			continue
		}
		name := normalizeTechnology(keyword)
		if seen[name] {
			continue
		}
		seen[name] = true
		found = append(found, name)
		if len(found) == maxTechnologies {
			break
		}
	}
	return found
}

func normalizeTechnology(keyword string) string {
	if len(keyword) <= 3 {
		return strings.ToUpper(keyword)
	}
	return titleWords(keyword)
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func detectProduct(lower string) (string, bool) {
	for _, product := range Vocab().Products {
		if strings.Contains(lower, product) {
			return titleWords(product), true
		}
	}
	return "", false
}
