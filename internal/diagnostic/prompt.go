package diagnostic

import (
	"fmt"
	"strings"

	"akorfa/internal/assess"
	"akorfa/internal/llmclient"
	"akorfa/internal/purpose"
)

// BuildChatPrompt renders the conversational prompt: one system message
// carrying the persona and current scores, the caller's history verbatim,
// then the new user message last. History length is the caller's problem.
func BuildChatPrompt(p purpose.Profile, scores assess.LayerScores, history []Turn, message string) []llmclient.Message {
	var sys strings.Builder
	sys.WriteString(p.Role)
	sys.WriteString("\n\nYou are advising within the ")
	sys.WriteString(p.Framework)
	sys.WriteString(". The user's current scores across their ")
	sys.WriteString(p.Context)
	sys.WriteString(" (1-10):\n")
	sys.WriteString(scoreLines(scores))
	sys.WriteString("\nGround your advice in these scores. Be practical and specific.")

	msgs := make([]llmclient.Message, 0, len(history)+2)
	msgs = append(msgs, llmclient.Message{Role: llmclient.RoleSystem, Content: sys.String()})
	for _, t := range history {
		msgs = append(msgs, llmclient.Message{Role: t.Role, Content: t.Content})
	}
	msgs = append(msgs, llmclient.Message{Role: llmclient.RoleUser, Content: message})
	return msgs
}

// BuildDiagnosisPrompt renders the root-cause prompt: a system message with
// the full layer descriptions and the required JSON shape, plus a user
// message carrying the scenario and scores.
func BuildDiagnosisPrompt(p purpose.Profile, scores assess.LayerScores, scenario string) []llmclient.Message {
	var sys strings.Builder
	sys.WriteString(p.Role)
	sys.WriteString("\n\nThe user will describe a problem scenario. Assess it against their ")
	sys.WriteString(p.Context)
	sys.WriteString(":\n")
	for i := range p.Layers {
		fmt.Fprintf(&sys, "- %s: %s\n", p.Layers[i], p.Descriptions[i])
	}
	sys.WriteString("\nIdentify which ")
	sys.WriteString(p.Context)
	sys.WriteString(" contribute to the problem, explain how they interact, and propose 4-5 concrete action steps.\n")
	sys.WriteString("Respond with only a JSON object in exactly this shape, with no prose around it and no code fences:\n")
	sys.WriteString(`{"summary": "...", "rootCauses": [{"layer": "...", "explanation": "..."}], ` +
		`"actionSteps": [{"action": "...", "description": "...", "timeline": "..."}], "whyItHelps": "..."}`)

	var usr strings.Builder
	usr.WriteString(scenario)
	usr.WriteString("\n\nCurrent scores across the user's ")
	usr.WriteString(p.Context)
	usr.WriteString(" (1-10):\n")
	usr.WriteString(scoreLines(scores))

	return []llmclient.Message{
		{Role: llmclient.RoleSystem, Content: sys.String()},
		{Role: llmclient.RoleUser, Content: usr.String()},
	}
}

// BuildInsightsPrompt renders a single user-role message with the
// enumerated scores, the mean, and the bottleneck layer.
func BuildInsightsPrompt(p purpose.Profile, scores assess.LayerScores) []llmclient.Message {
	bottleneck, idx := scores.Bottleneck()

	var b strings.Builder
	b.WriteString(p.Role)
	b.WriteString("\n\nAssessment of the user's ")
	b.WriteString(p.Context)
	b.WriteString(" under the ")
	b.WriteString(p.Framework)
	b.WriteString(":\n")
	for i := 0; i < scores.Len(); i++ {
		fmt.Fprintf(&b, "%d. %s (score: %s)\n", i+1, strings.ToUpper(scores.Name(i)), assess.FormatScore(scores.Value(i)))
	}
	fmt.Fprintf(&b, "\nAverage score: %.2f\n", scores.Mean())
	fmt.Fprintf(&b, "Lowest-scoring area: %s (score: %s)\n", bottleneck, assess.FormatScore(scores.Value(idx)))
	b.WriteString("\nGive 3-4 practical suggestions for improvement, prioritizing ")
	b.WriteString(bottleneck)
	b.WriteString(".")

	return []llmclient.Message{{Role: llmclient.RoleUser, Content: b.String()}}
}

func scoreLines(scores assess.LayerScores) string {
	var b strings.Builder
	for i := 0; i < scores.Len(); i++ {
		fmt.Fprintf(&b, "- %s: %s\n", scores.Name(i), assess.FormatScore(scores.Value(i)))
	}
	return b.String()
}
