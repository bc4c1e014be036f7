package diagnostic

import (
	"context"

	"akorfa/internal/assess"
	"akorfa/internal/llmclient"
	"akorfa/internal/purpose"
)

// Pipeline resolves a purpose profile, builds the prompt, invokes the
// completion service, and interprets the reply. It holds no mutable state;
// concurrent requests share it freely.
type Pipeline struct {
	client    llmclient.Client
	maxTokens int
}

func NewPipeline(client llmclient.Client, maxTokens int) *Pipeline {
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &Pipeline{client: client, maxTokens: maxTokens}
}

// Chat answers one conversational turn. The raw reply is returned as-is.
func (p *Pipeline) Chat(ctx context.Context, purposeTag string, scores []float64, history []Turn, message string) (string, error) {
	prof := purpose.Resolve(purposeTag)
	ls, err := assess.Pair(prof.Layers, scores)
	if err != nil {
		return "", err
	}
	return p.client.Complete(ctx, BuildChatPrompt(prof, ls, history, message), p.maxTokens)
}

// Diagnose produces a structured diagnosis for a free-text scenario.
// Upstream failures propagate; unparseable replies do not — they become the
// deterministic fallback, so a successful invocation always yields a
// well-formed diagnosis.
func (p *Pipeline) Diagnose(ctx context.Context, purposeTag, scenario string, scores []float64) (Diagnosis, error) {
	prof := purpose.Resolve(purposeTag)
	ls, err := assess.Pair(prof.Layers, scores)
	if err != nil {
		return Diagnosis{}, err
	}
	raw, err := p.client.Complete(ctx, BuildDiagnosisPrompt(prof, ls, scenario), p.maxTokens)
	if err != nil {
		return Diagnosis{}, err
	}
	return InterpretDiagnosis(raw, prof), nil
}

// Insights produces narrative suggestions prioritizing the bottleneck
// layer. The raw reply is returned as-is.
func (p *Pipeline) Insights(ctx context.Context, purposeTag string, scores []float64) (string, error) {
	prof := purpose.Resolve(purposeTag)
	ls, err := assess.Pair(prof.Layers, scores)
	if err != nil {
		return "", err
	}
	return p.client.Complete(ctx, BuildInsightsPrompt(prof, ls), p.maxTokens)
}
