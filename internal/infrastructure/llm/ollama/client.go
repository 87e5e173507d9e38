package ollama

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/filewise-ai/filewise/internal/core/domain"
	"github.com/filewise-ai/filewise/internal/core/ports"
	"github.com/filewise-ai/filewise/internal/infrastructure/resilience"
)

const (
	maxAlternatives   = 3
	maxFolderProposal = 3
)

// Client adapts a local Ollama instance to the completion port. Every failure
// is reported as one of the typed completion kinds so the core can route to
// its deterministic fallback; the client never panics on model output.
type Client struct {
	baseURL    string
	model      string
	httpClient *httpDoer
	exec       *resilience.Executor
}

func New(baseURL, model string, timeout time.Duration, exec *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: newHTTPDoer(timeout),
		exec:       exec,
	}
}

var _ ports.CompletionProvider = (*Client)(nil)

type namingResponse struct {
	SuggestedName  string   `json:"suggestedName"`
	Confidence     *float64 `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
	Alternatives   []string `json:"alternatives"`
	ContentSummary string   `json:"contentSummary"`
}

func (c *Client) SuggestName(ctx context.Context, req ports.NamingRequest) (domain.NamingSuggestion, error) {
	const operation = "suggest name"
	if err := c.checkConfigured(operation); err != nil {
		return domain.NamingSuggestion{}, err
	}

	raw, err := c.generateJSON(ctx, operation, buildNamingPrompt(req))
	if err != nil {
		return domain.NamingSuggestion{}, err
	}

	var parsed namingResponse
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &parsed); err != nil {
		return domain.NamingSuggestion{}, domain.WrapError(domain.ErrCompletionMalformed, operation, err)
	}
	if strings.TrimSpace(parsed.SuggestedName) == "" {
		return domain.NamingSuggestion{}, domain.WrapError(domain.ErrCompletionMalformed, operation, errMissingField("suggestedName"))
	}
	if parsed.Confidence == nil {
		return domain.NamingSuggestion{}, domain.WrapError(domain.ErrCompletionMalformed, operation, errMissingField("confidence"))
	}

	suggestion := domain.NamingSuggestion{
		Name:           strings.TrimSpace(parsed.SuggestedName),
		Confidence:     clamp01(*parsed.Confidence),
		Reasoning:      strings.TrimSpace(parsed.Reasoning),
		ContentSummary: strings.TrimSpace(parsed.ContentSummary),
	}
	for _, alt := range parsed.Alternatives {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		suggestion.Alternatives = append(suggestion.Alternatives, alt)
		if len(suggestion.Alternatives) == maxAlternatives {
			break
		}
	}
	return suggestion, nil
}

type folderResponse struct {
	Folders []struct {
		Path       string   `json:"path"`
		Confidence *float64 `json:"confidence"`
		Reasoning  string   `json:"reasoning"`
		Category   string   `json:"category"`
	} `json:"folders"`
}

func (c *Client) SuggestFolders(ctx context.Context, req ports.FolderRequest) ([]domain.FolderSuggestion, error) {
	const operation = "suggest folders"
	if err := c.checkConfigured(operation); err != nil {
		return nil, err
	}

	raw, err := c.generateJSON(ctx, operation, buildFolderPrompt(req))
	if err != nil {
		return nil, err
	}

	var parsed folderResponse
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &parsed); err != nil {
		return nil, domain.WrapError(domain.ErrCompletionMalformed, operation, err)
	}

	var suggestions []domain.FolderSuggestion
	for _, f := range parsed.Folders {
		path := strings.TrimSpace(f.Path)
		if path == "" {
			continue
		}
		confidence := 0.5
		if f.Confidence != nil {
			confidence = clamp01(*f.Confidence)
		}
		suggestions = append(suggestions, domain.FolderSuggestion{
			Path:       path,
			Confidence: confidence,
			Reasoning:  strings.TrimSpace(f.Reasoning),
			Category:   strings.TrimSpace(f.Category),
		})
		if len(suggestions) == maxFolderProposal {
			break
		}
	}
	if len(suggestions) == 0 {
		return nil, domain.WrapError(domain.ErrCompletionMalformed, operation, errMissingField("folders"))
	}
	return suggestions, nil
}

func (c *Client) checkConfigured(operation string) error {
	if c.baseURL == "" || c.model == "" {
		return domain.WrapError(domain.ErrNotConfigured, operation, errNoEndpoint)
	}
	return nil
}

// generateJSON runs one completion call through the circuit breaker and maps
// transport failures to the typed completion kinds. Exactly one attempt per
// request.
func (c *Client) generateJSON(ctx context.Context, operation, prompt string) (string, error) {
	reqBody := map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
		"format": "json",
	}

	var response struct {
		Response string `json:"response"`
	}

	call := func(ctx context.Context) error {
		return c.httpClient.postJSON(ctx, c.baseURL+"/api/generate", reqBody, &response, operation)
	}

	var err error
	if c.exec != nil {
		err = c.exec.Execute(ctx, operation, call, classifyCompletionError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", wrapTransportError(operation, err)
	}
	return strings.TrimSpace(response.Response), nil
}

// extractJSONObject tolerates prose around the JSON body, a common failure
// mode of small local models.
func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
