// Package diagnostic assembles purpose-aware prompts, invokes the
// completion service, and interprets its replies.
package diagnostic

// Turn is one entry of a caller-owned conversation history. The pipeline
// only ever appends an assistant turn; it never rewrites history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RootCause names one contributing layer in a diagnosis.
type RootCause struct {
	Layer       string `json:"layer"`
	Explanation string `json:"explanation"`
}

// ActionStep is one recommended step in a diagnosis.
type ActionStep struct {
	Action      string `json:"action"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
}

// Diagnosis is the structured output for a problem scenario. The shape is
// fixed across all purposes; only the labels inside it vary.
type Diagnosis struct {
	Summary     string       `json:"summary"`
	RootCauses  []RootCause  `json:"rootCauses"`
	ActionSteps []ActionStep `json:"actionSteps"`
	WhyItHelps  string       `json:"whyItHelps"`
}
