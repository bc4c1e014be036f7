package diagnostic

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"akorfa/internal/llmclient"
)

func TestPipeline_ChatPassesThrough(t *testing.T) {
	fake := llmclient.NewFakeClient("you should sleep more")
	p := NewPipeline(fake, 500)

	reply, err := p.Chat(context.Background(), "personal", []float64{3, 8, 5, 9, 2}, nil, "help")
	require.NoError(t, err)
	require.Equal(t, "you should sleep more", reply)
	require.Equal(t, 1, fake.CallCount())
	require.Equal(t, []int{500}, fake.MaxTokens)

	msgs := fake.Calls[0]
	require.Equal(t, llmclient.RoleSystem, msgs[0].Role)
	require.Equal(t, "help", msgs[len(msgs)-1].Content)
}

func TestPipeline_DiagnoseParsesStructuredReply(t *testing.T) {
	fake := llmclient.NewFakeClient(`{"summary":"low energy","rootCauses":[{"layer":"Bio-Hardware","explanation":"sleep"}],"actionSteps":[],"whyItHelps":"rest"}`)
	p := NewPipeline(fake, 0)

	d, err := p.Diagnose(context.Background(), "personal", "always tired", []float64{3, 8, 5, 9, 2})
	require.NoError(t, err)
	require.Equal(t, "low energy", d.Summary)
	require.Len(t, d.RootCauses, 1)
	require.Equal(t, "Bio-Hardware", d.RootCauses[0].Layer)
}

func TestPipeline_DiagnoseFallsBackOnProse(t *testing.T) {
	fake := llmclient.NewFakeClient("Sure! Here is my take on your situation.")
	p := NewPipeline(fake, 0)

	d, err := p.Diagnose(context.Background(), "team", "we keep missing deadlines", []float64{6, 6, 6, 6, 6})
	require.NoError(t, err)
	require.Equal(t, "Sure! Here is my take on your situation.", d.Summary)
	require.Len(t, d.ActionSteps, 3)
	require.Contains(t, d.WhyItHelps, "team dimensions")
}

func TestPipeline_UpstreamErrorPropagates(t *testing.T) {
	fake := llmclient.NewFakeClient("")
	fake.Err = &llmclient.UpstreamError{Provider: "openai", Status: "503 Service Unavailable"}
	p := NewPipeline(fake, 0)

	_, err := p.Diagnose(context.Background(), "personal", "scenario", []float64{1, 2, 3, 4, 5})
	require.Error(t, err)
	var upstream *llmclient.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestPipeline_UnknownPurposeUsesPersonalLayers(t *testing.T) {
	fake := llmclient.NewFakeClient("ok")
	p := NewPipeline(fake, 0)

	_, err := p.Insights(context.Background(), "finance", []float64{3, 8, 5, 9, 2})
	require.NoError(t, err)
	body := fake.Calls[0][0].Content
	if !strings.Contains(body, "BIO-HARDWARE") {
		t.Fatalf("unknown purpose must render personal layers, got:\n%s", body)
	}
}

func TestPipeline_RejectsWrongScoreCount(t *testing.T) {
	fake := llmclient.NewFakeClient("ok")
	p := NewPipeline(fake, 0)

	_, err := p.Chat(context.Background(), "personal", []float64{1, 2, 3}, nil, "hi")
	require.Error(t, err)
	require.Equal(t, 0, fake.CallCount())
}
