package domain

import (
	"errors"
	"strings"
)

// ContentSample is the immutable input of one analysis request: the file's
// current name, its extension, size, and a short text excerpt of its content.
type ContentSample struct {
	OriginalName  string `json:"originalName"`
	Extension     string `json:"extension"`
	SizeBytes     int64  `json:"sizeBytes"`
	PreviewText   string `json:"previewText,omitempty"`
	BaseDirectory string `json:"baseDirectory,omitempty"`
}

// Validate reports the only caller-visible failure: a malformed input sample.
// It runs before any pipeline stage.
func (s ContentSample) Validate() error {
	if strings.TrimSpace(s.OriginalName) == "" {
		return WrapError(ErrInvalidInput, "validate sample", errors.New("originalName is required"))
	}
	if strings.TrimSpace(s.Extension) == "" {
		return WrapError(ErrInvalidInput, "validate sample", errors.New("extension is required"))
	}
	if !strings.HasPrefix(s.Extension, ".") {
		return WrapError(ErrInvalidInput, "validate sample", errors.New("extension must start with a dot"))
	}
	if s.SizeBytes < 0 {
		return WrapError(ErrInvalidInput, "validate sample", errors.New("sizeBytes must be non-negative"))
	}
	return nil
}

// ExtractedEntities holds structured facts pulled from the preview text.
// An empty value means the field was never populated: extraction either sets a
// validated non-empty value or leaves the field untouched.
type ExtractedEntities struct {
	Budget        string   `json:"budget,omitempty"`
	Amount        string   `json:"amount,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	TeamSize      string   `json:"teamSize,omitempty"`
	Deadline      string   `json:"deadline,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Company       string   `json:"company,omitempty"`
	Product       string   `json:"product,omitempty"`
	InvoiceNumber string   `json:"invoiceNumber,omitempty"`
	PONumber      string   `json:"poNumber,omitempty"`
}

// entityFieldCount is the number of independently populated entity fields,
// used as the denominator of the extraction-density sub-score.
const entityFieldCount = 10

// PopulatedFields counts how many entity fields carry a value.
func (e ExtractedEntities) PopulatedFields() int {
	n := 0
	for _, v := range []string{
		e.Budget, e.Amount, e.Currency, e.TeamSize, e.Deadline,
		e.Company, e.Product, e.InvoiceNumber, e.PONumber,
	} {
		if v != "" {
			n++
		}
	}
	if len(e.Technologies) > 0 {
		n++
	}
	return n
}

// Density is the share of populated entity fields in [0,1].
func (e ExtractedEntities) Density() float64 {
	return float64(e.PopulatedFields()) / float64(entityFieldCount)
}

// Empty reports whether no entity field was populated at all.
func (e ExtractedEntities) Empty() bool {
	return e.PopulatedFields() == 0
}

// PrimaryTechnology returns the first detected technology or "".
func (e ExtractedEntities) PrimaryTechnology() string {
	if len(e.Technologies) == 0 {
		return ""
	}
	return e.Technologies[0]
}

// Category is the closed classification set. Exactly one is assigned per
// request before routing runs.
type Category string

const (
	CategoryResume          Category = "resume"
	CategoryProjectProposal Category = "project-proposal"
	CategoryInvoice         Category = "invoice"
	CategoryMeetingNotes    Category = "meeting-notes"
	CategoryReport          Category = "report"
	CategoryContract        Category = "contract"
	CategoryCode            Category = "code"
	CategoryDocument        Category = "document"

	// CategoryUnknown is assigned only by the error-fallback path.
	CategoryUnknown Category = "unknown"
)

// NamingSuggestion is a parsed naming proposal, from the completion capability
// or from the deterministic fallback namer.
type NamingSuggestion struct {
	Name           string   `json:"suggestedName"`
	Confidence     float64  `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
	Alternatives   []string `json:"alternatives,omitempty"`
	ContentSummary string   `json:"contentSummary,omitempty"`
}

// FolderSuggestion is one ranked destination-folder proposal, relative to the
// sample's base directory when one was given.
type FolderSuggestion struct {
	Path       string  `json:"path"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	Category   string  `json:"category"`
}

// Recommendation is the external response assembled by the Finalize stage.
type Recommendation struct {
	SuggestedName     string             `json:"suggestedName"`
	Confidence        float64            `json:"confidence"`
	Category          Category           `json:"category"`
	Subcategory       string             `json:"subcategory"`
	Decision          Decision           `json:"decision"`
	Approval          ApprovalOutcome    `json:"approval,omitempty"`
	NameSource        NameSource         `json:"nameSource"`
	Reasoning         string             `json:"reasoning"`
	Alternatives      []string           `json:"alternatives"`
	ContentSummary    string             `json:"contentSummary,omitempty"`
	Tags              []string           `json:"tags"`
	Entities          ExtractedEntities  `json:"entities"`
	FolderSuggestions []FolderSuggestion `json:"folderSuggestions"`
	ProcessingStages  []string           `json:"processingStages"`
	ProcessingTimeMS  int64              `json:"processingTimeMs"`
}
