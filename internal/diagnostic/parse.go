package diagnostic

import (
	"encoding/json"

	"akorfa/internal/purpose"
)

// TryParseDiagnosis attempts a strict parse of the completion service's
// reply. Nested fields are not validated beyond the JSON shape itself; a
// parseable-but-sparse object passes through unchanged. Replies wrapped in
// prose or code fences fail here and take the fallback path.
func TryParseDiagnosis(raw string) (Diagnosis, bool) {
	var d Diagnosis
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Diagnosis{}, false
	}
	return d, true
}

// FallbackDiagnosis synthesizes a deterministic diagnosis when the reply
// was not parseable. The raw text becomes the summary so nothing the model
// said is lost, and the generic guidance is phrased with the profile's
// context noun so it reads consistently with the live path.
func FallbackDiagnosis(raw string, p purpose.Profile) Diagnosis {
	return Diagnosis{
		Summary: raw,
		RootCauses: []RootCause{
			{
				Layer:       "Multiple",
				Explanation: "Several of your " + p.Context + " appear to be interacting to produce this problem.",
			},
		},
		ActionSteps: []ActionStep{
			{
				Action:      "Build awareness",
				Description: "Re-read your scores and notice which of your " + p.Context + " feel most strained day to day.",
				Timeline:    "This week",
			},
			{
				Action:      "Pick your lowest-scoring area",
				Description: "Choose the single lowest-scoring of your " + p.Context + " as the one place to focus first.",
				Timeline:    "Today",
			},
			{
				Action:      "Take one small action",
				Description: "Commit to one concrete, repeatable step that improves that area, and do it before revisiting the rest.",
				Timeline:    "Next 48 hours",
			},
		},
		WhyItHelps: "Your " + p.Context + " form one connected system; improving any one of them tends to lift the others.",
	}
}

// InterpretDiagnosis never fails: it returns the parsed diagnosis when the
// reply matched the shape, and the deterministic fallback otherwise.
func InterpretDiagnosis(raw string, p purpose.Profile) Diagnosis {
	if d, ok := TryParseDiagnosis(raw); ok {
		return d
	}
	return FallbackDiagnosis(raw, p)
}
