package llmclient

import (
	"context"
	"os"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client, kept as
// an alternative provider behind the same Client interface.
type GeminiClient struct {
	cli      *genai.Client
	apiKey   string
	model    string
	tokenCap int
}

func NewGeminiClient(ctx context.Context, apiKey, model string, tokenCap int) (*GeminiClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if tokenCap <= 0 {
		tokenCap = 1000
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, apiKey: apiKey, model: model, tokenCap: tokenCap}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }

// Complete flattens the role-tagged messages into a single text part; the
// Gemini API has no assistant-role replay for this use, and the prompt
// builders already render self-contained text.
func (g *GeminiClient) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	if strings.TrimSpace(g.apiKey) == "" {
		return "", ErrMissingCredential
	}
	if maxTokens <= 0 {
		maxTokens = g.tokenCap
	}

	var sb strings.Builder
	for _, m := range messages {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		switch m.Role {
		case RoleSystem:
			sb.WriteString(m.Content)
		case RoleAssistant:
			sb.WriteString("Assistant: " + m.Content)
		default:
			sb.WriteString("User: " + m.Content)
		}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: sb.String()}}}},
		&genai.GenerateContentConfig{MaxOutputTokens: int32(maxTokens)},
	)
	if err != nil {
		return "", &UpstreamError{Provider: "gemini", Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Provider: "gemini", Body: "empty candidates"}
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
