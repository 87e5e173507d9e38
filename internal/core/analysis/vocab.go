package analysis

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// Vocabulary holds the keyword tables driving extraction, classification and
// fallback naming. It is data, not logic: precedence and thresholds live in
// the rule cascade, the vocabulary only names the indicators.
type Vocabulary struct {
	Technologies         []string          `yaml:"technologies"`
	ResumeIndicators     []string          `yaml:"resume_indicators"`
	InvoiceIndicators    []string          `yaml:"invoice_indicators"`
	Products             []string          `yaml:"products"`
	BusinessTerms        []string          `yaml:"business_terms"`
	NameFalsePositives   []string          `yaml:"name_false_positives"`
	CapitalizedStopwords []string          `yaml:"capitalized_stopwords"`
	FolderFallback       map[string]string `yaml:"folder_fallback"`
}

// FallbackFolderPath resolves the static destination folder for a category,
// falling back to the general bucket for anything unmapped.
func FallbackFolderPath(category string) string {
	v := Vocab()
	if path, ok := v.FolderFallback[category]; ok {
		return path
	}
	return v.FolderFallback["document"]
}

var (
	vocabOnce sync.Once
	vocab     Vocabulary
	vocabErr  error
)

// Vocab returns the embedded vocabulary, parsed once.
func Vocab() Vocabulary {
	vocabOnce.Do(func() {
		vocabErr = yaml.Unmarshal(rulesYAML, &vocab)
	})
	if vocabErr != nil {
		// The rules file is embedded at build time; a parse failure is a
		// packaging defect, not a runtime condition.
		panic(fmt.Sprintf("analysis: parse embedded rules.yaml: %v", vocabErr))
	}
	return vocab
}
