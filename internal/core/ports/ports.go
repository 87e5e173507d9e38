package ports

import (
	"context"

	"github.com/filewise-ai/filewise/internal/core/domain"
)

// NamingRequest is the structured payload handed to the completion capability
// when asking for a filename suggestion.
type NamingRequest struct {
	Sample      domain.ContentSample
	Entities    domain.ExtractedEntities
	Category    domain.Category
	Subcategory string
	Tags        []string
}

// FolderRequest asks for ranked destination-folder proposals.
type FolderRequest struct {
	OriginalName    string
	Category        domain.Category
	BusinessContext string
	BaseDirectory   string
}

// CompletionProvider wraps the opaque external language-completion
// capability. Implementations return typed completion failures
// (domain.ErrCompletionUnavailable, domain.ErrCompletionMalformed,
// domain.ErrNotConfigured); they never crash on malformed output.
type CompletionProvider interface {
	SuggestName(ctx context.Context, req NamingRequest) (domain.NamingSuggestion, error)
	SuggestFolders(ctx context.Context, req FolderRequest) ([]domain.FolderSuggestion, error)
}
