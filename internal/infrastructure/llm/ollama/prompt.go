package ollama

import (
	"fmt"
	"strings"

	"github.com/filewise-ai/filewise/internal/core/ports"
)

const maxPromptSnippet = 4000

func buildNamingPrompt(req ports.NamingRequest) string {
	var b strings.Builder

	b.WriteString(`You are a file naming assistant.
Return a strict JSON object with keys:
suggestedName (string, kebab-case, no extension), confidence (number from 0 to 1), reasoning (string), alternatives (array of up to 3 strings), contentSummary (string, one sentence).
No markdown, no extra keys.

`)

	fmt.Fprintf(&b, "Current name: %s\n", req.Sample.OriginalName)
	fmt.Fprintf(&b, "Category: %s/%s\n", req.Category, req.Subcategory)
	if len(req.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(req.Tags, ", "))
	}
	writeEntityLines(&b, req)

	b.WriteString("\nContent:\n")
	b.WriteString(snippet(req.Sample.PreviewText))
	return b.String()
}

func writeEntityLines(b *strings.Builder, req ports.NamingRequest) {
	e := req.Entities
	if e.Company != "" {
		fmt.Fprintf(b, "Company: %s\n", e.Company)
	}
	if e.Budget != "" {
		fmt.Fprintf(b, "Budget: %s\n", e.Budget)
	}
	if e.TeamSize != "" {
		fmt.Fprintf(b, "Team: %s\n", e.TeamSize)
	}
	if e.Deadline != "" {
		fmt.Fprintf(b, "Deadline: %s\n", e.Deadline)
	}
	if len(e.Technologies) > 0 {
		fmt.Fprintf(b, "Technologies: %s\n", strings.Join(e.Technologies, ", "))
	}
	if e.InvoiceNumber != "" {
		fmt.Fprintf(b, "Invoice number: %s\n", e.InvoiceNumber)
	}
}

func buildFolderPrompt(req ports.FolderRequest) string {
	var b strings.Builder

	b.WriteString(`You are a file organization assistant.
Return a strict JSON object with a single key folders: an array of up to 3 objects, each with keys path (string, relative folder path), confidence (number from 0 to 1), reasoning (string), category (string).
Order folders from most to least suitable. No markdown, no extra keys.

`)

	fmt.Fprintf(&b, "File: %s\n", req.OriginalName)
	fmt.Fprintf(&b, "Category: %s\n", req.Category)
	if req.BusinessContext != "" {
		fmt.Fprintf(&b, "Context: %s\n", req.BusinessContext)
	}
	if req.BaseDirectory != "" {
		fmt.Fprintf(&b, "Base directory: %s\n", req.BaseDirectory)
	}
	return b.String()
}

func snippet(text string) string {
	if len(text) > maxPromptSnippet {
		return text[:maxPromptSnippet]
	}
	return text
}
