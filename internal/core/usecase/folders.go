package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/filewise-ai/filewise/internal/core/analysis"
	"github.com/filewise-ai/filewise/internal/core/domain"
	"github.com/filewise-ai/filewise/internal/core/ports"
)

const (
	maxFolderSuggestions   = 3
	staticFolderConfidence = 0.7
)

// FolderAgent produces ranked destination-folder proposals. It asks the
// completion capability first and degrades to a static category-to-folder
// table, so a folder list is always produced.
type FolderAgent struct {
	completion ports.CompletionProvider
}

func NewFolderAgent(completion ports.CompletionProvider) *FolderAgent {
	return &FolderAgent{completion: completion}
}

// Suggest never fails: any completion error or empty result collapses to the
// single static suggestion for the category.
func (a *FolderAgent) Suggest(ctx context.Context, req ports.FolderRequest) []domain.FolderSuggestion {
	suggestions, err := a.completion.SuggestFolders(ctx, req)
	if err != nil || len(suggestions) == 0 {
		return staticFolderSuggestion(req.Category, req.BaseDirectory)
	}

	if len(suggestions) > maxFolderSuggestions {
		suggestions = suggestions[:maxFolderSuggestions]
	}
	for i := range suggestions {
		suggestions[i].Confidence = clamp01(suggestions[i].Confidence)
		suggestions[i].Path = anchorPath(suggestions[i].Path, req.BaseDirectory)
		if suggestions[i].Category == "" {
			suggestions[i].Category = string(req.Category)
		}
	}
	return suggestions
}

func staticFolderSuggestion(category domain.Category, baseDir string) []domain.FolderSuggestion {
	folder := analysis.FallbackFolderPath(string(category))
	return []domain.FolderSuggestion{{
		Path:       anchorPath(folder, baseDir),
		Confidence: staticFolderConfidence,
		Reasoning:  fmt.Sprintf("standard destination for %s files", category),
		Category:   string(category),
	}}
}

// anchorPath prefixes the base directory unless the suggestion is already
// anchored under it.
func anchorPath(p, baseDir string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	base := strings.TrimRight(baseDir, "/")
	if p == "" {
		return base
	}
	if base == "" {
		return p
	}
	baseRel := strings.TrimLeft(base, "/")
	if p == baseRel || strings.HasPrefix(p, baseRel+"/") {
		if strings.HasPrefix(base, "/") {
			return "/" + p
		}
		return p
	}
	return path.Join(base, p)
}
