// Package namegen produces display names for groups. The Gemini-backed
// implementation is best-effort; callers fall back to Fallback labels when it
// fails, so a partition result never depends on it.
package namegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

type Namer interface {
	GroupNames(ctx context.Context, groups [][]string) ([]string, error)
}

type Gemini struct {
	svc   *generativelanguage.Service
	model string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create generative language client: %w", err)
	}
	return &Gemini{svc: svc, model: model}, nil
}

func (g *Gemini) GroupNames(ctx context.Context, groups [][]string) ([]string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: buildPrompt(groups)}},
		}},
	}
	resp, err := g.svc.Models.GenerateContent("models/"+g.model, req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("generate group names: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generate group names: empty response")
	}
	return parseNames(resp.Candidates[0].Content.Parts[0].Text, len(groups))
}

func buildPrompt(groups [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invent one short, friendly team name for each of the %d groups below.\n", len(groups))
	b.WriteString("Respond with only a JSON array of strings, one name per group, in order.\n")
	for i, members := range groups {
		fmt.Fprintf(&b, "Group %d: %s\n", i+1, strings.Join(members, ", "))
	}
	return b.String()
}

// parseNames extracts a JSON string array from a model response, tolerating
// code fences and surrounding prose.
func parseNames(text string, want int) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("parse group names: no JSON array in %q", text)
	}
	var names []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &names); err != nil {
		return nil, fmt.Errorf("parse group names: %w", err)
	}
	if len(names) != want {
		return nil, fmt.Errorf("parse group names: got %d names, want %d", len(names), want)
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("parse group names: empty name at index %d", i)
		}
		names[i] = name
	}
	return names, nil
}

// Fallback returns deterministic labels used whenever name generation fails.
func Fallback(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Group %d", i+1)
	}
	return names
}
