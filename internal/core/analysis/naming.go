package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

// The fallback namer is total: it never fails, never returns an empty name,
// always appends the original extension, and bounds the base name to
// maxNameLen characters. It is the guaranteed route when the completion
// capability is unavailable or unusable.

const (
	maxNameLen = 60
	minNameLen = 8
)

var (
	personNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`),
		regexp.MustCompile(`\b([A-Z][A-Z]+ [A-Z][a-z]+)\b`),
		regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+)`),
	}

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`([0-9]+)\+?\s*years?\s*of\s*experience`),
		regexp.MustCompile(`([0-9]+)\+?\s*years?\s*experience`),
		regexp.MustCompile(`([0-9]+)\+?\s*yrs?\s*experience`),
	}

	capitalizedWordRE = regexp.MustCompile(`\b[A-Z][a-zA-Z]{3,}\b`)
	nonNameCharsRE    = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	repeatedHyphenRE  = regexp.MustCompile(`-+`)
)

// FallbackName builds a deterministic filename from semantic parts pulled out
// of the content, specific to the assigned category, then sanitizes and
// bounds the result. The original extension is always appended.
func FallbackName(text string, e domain.ExtractedEntities, category domain.Category, extension string) string {
	lower := strings.ToLower(text)

	var parts []string
	switch category {
	case domain.CategoryResume:
		parts = resumeParts(text, lower, e)
	case domain.CategoryProjectProposal:
		parts = proposalParts(e)
	case domain.CategoryInvoice:
		parts = invoiceParts(lower, e)
	case domain.CategoryMeetingNotes:
		parts = meetingParts(lower, e)
	case domain.CategoryReport:
		parts = reportParts(lower, e)
	default:
		parts = genericParts(lower, e)
	}

	// When category-specific assembly found too little, mine capitalized
	// words from the content itself.
	if len(parts) <= 2 {
		parts = append(parts, capitalizedWords(text, 2, parts)...)
	}

	if year := yearTag(lower); year != "" {
		parts = append(parts, year)
	}

	if len(parts) == 0 {
		parts = []string{string(category), "document"}
	}

	name := sanitizeName(joinParts(parts))
	name = truncateAtBoundary(name, maxNameLen)
	if len(name) < minNameLen {
		name = string(category) + "-document"
	}
	return name + extension
}

func resumeParts(text, lower string, e domain.ExtractedEntities) []string {
	parts := []string{"resume"}

	if name, ok := personName(text); ok {
		parts = append(parts, name)
	}

	switch {
	case strings.Contains(lower, "software engineer"):
		parts = append(parts, "software-engineer")
	case strings.Contains(lower, "data scientist"):
		parts = append(parts, "data-scientist")
	case strings.Contains(lower, "developer"):
		parts = append(parts, "developer")
	case strings.Contains(lower, "engineer"):
		parts = append(parts, "engineer")
	}

	if tech := e.PrimaryTechnology(); tech != "" {
		parts = append(parts, techSlug(tech))
	}

	for _, re := range experiencePatterns {
		m := re.FindStringSubmatch(lower)
		if len(m) < 2 {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err == nil && years >= 1 && years <= 20 {
			parts = append(parts, fmt.Sprintf("%dyrs", years))
		}
		break
	}

	return parts
}

// personName looks for a capitalized two-word sequence, rejecting common
// resume-section words that pattern-match like names.
func personName(text string) (string, bool) {
	for _, re := range personNamePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		candidate := m[1]
		if containsAny(strings.ToLower(candidate), Vocab().NameFalsePositives) {
			continue
		}
		return slug(candidate), true
	}
	return "", false
}

func proposalParts(e domain.ExtractedEntities) []string {
	parts := []string{"project-proposal"}

	for i, tech := range e.Technologies {
		if i == 2 {
			break
		}
		parts = append(parts, techSlug(tech))
	}

	if e.Company != "" {
		company := strings.ReplaceAll(slug(e.Company), "corporation", "corp")
		parts = append(parts, company)
	}

	if e.Budget != "" {
		raw := strings.ReplaceAll(strings.TrimPrefix(e.Budget, "$"), ",", "")
		if amount, err := strconv.Atoi(raw); err == nil && amount >= 1000 {
			parts = append(parts, fmt.Sprintf("%dk", amount/1000))
		}
	}

	return parts
}

func invoiceParts(lower string, e domain.ExtractedEntities) []string {
	parts := []string{"invoice"}

	if e.Company != "" {
		parts = append(parts, slug(e.Company))
	}

	switch {
	case strings.Contains(lower, "macbook"):
		parts = append(parts, "macbook")
	case strings.Contains(lower, "software") && strings.Contains(lower, "license"):
		parts = append(parts, "software-license")
	case strings.Contains(lower, "consulting"):
		parts = append(parts, "consulting")
	case strings.Contains(lower, "development"):
		parts = append(parts, "development")
	}

	if e.InvoiceNumber != "" && len(e.InvoiceNumber) <= 10 {
		parts = append(parts, strings.ToLower(e.InvoiceNumber))
	}

	return parts
}

func meetingParts(lower string, e domain.ExtractedEntities) []string {
	parts := []string{"meeting-notes"}

	switch {
	case strings.Contains(lower, "standup"):
		parts = append(parts, "standup")
	case strings.Contains(lower, "planning"):
		parts = append(parts, "planning")
	case strings.Contains(lower, "review"):
		parts = append(parts, "review")
	case strings.Contains(lower, "kickoff"):
		parts = append(parts, "kickoff")
	}

	if tech := e.PrimaryTechnology(); tech != "" {
		parts = append(parts, slug(tech))
	}

	return parts
}

func reportParts(lower string, e domain.ExtractedEntities) []string {
	var parts []string
	switch {
	case strings.Contains(lower, "quarterly"):
		parts = append(parts, "quarterly-report")
	case strings.Contains(lower, "annual"):
		parts = append(parts, "annual-report")
	case strings.Contains(lower, "status"):
		parts = append(parts, "status-report")
	default:
		parts = append(parts, "report")
	}

	if tech := e.PrimaryTechnology(); tech != "" {
		parts = append(parts, slug(tech))
	}

	return parts
}

func genericParts(lower string, e domain.ExtractedEntities) []string {
	parts := []string{"document"}

	var extra []string
	for _, term := range Vocab().BusinessTerms {
		if strings.Contains(lower, term) {
			extra = append(extra, term)
			break
		}
	}
	if tech := e.PrimaryTechnology(); tech != "" {
		extra = append(extra, slug(tech))
	}
	if len(extra) > 2 {
		extra = extra[:2]
	}

	return append(parts, extra...)
}

// capitalizedWords mines up to max meaningful capitalized words from content,
// skipping stopwords and words the assembled parts already carry.
func capitalizedWords(text string, max int, existing []string) []string {
	stopwords := Vocab().CapitalizedStopwords
	var words []string
	for _, w := range capitalizedWordRE.FindAllString(text, -1) {
		lower := strings.ToLower(w)
		if containsAny(lower, stopwords) {
			continue
		}
		if partsContain(existing, lower) {
			continue
		}
		words = append(words, lower)
		if len(words) == max {
			break
		}
	}
	return words
}

func partsContain(parts []string, word string) bool {
	for _, p := range parts {
		if strings.Contains(p, word) {
			return true
		}
	}
	return false
}

func yearTag(lower string) string {
	switch {
	case strings.Contains(lower, "2024"):
		return "2024"
	case strings.Contains(lower, "2025"):
		return "2025"
	}
	return ""
}

func joinParts(parts []string) string {
	kept := parts[:0:0]
	seen := make(map[string]bool)
	for _, p := range parts {
		if len(p) <= 1 || seen[p] {
			continue
		}
		seen[p] = true
		kept = append(kept, p)
	}
	return strings.Join(kept, "-")
}

func sanitizeName(name string) string {
	name = nonNameCharsRE.ReplaceAllString(name, "")
	name = repeatedHyphenRE.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}

// truncateAtBoundary bounds the name to max characters, cutting back to the
// previous hyphen when the limit would split a word.
func truncateAtBoundary(name string, max int) string {
	if len(name) <= max {
		return name
	}
	cut := name[:max]
	if name[max] != '-' {
		if idx := strings.LastIndexByte(cut, '-'); idx >= minNameLen {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, "-")
}

// techSlug hyphenates a technology name, shortening machine learning to ml.
func techSlug(tech string) string {
	return strings.ReplaceAll(slug(tech), "machine-learning", "ml")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
