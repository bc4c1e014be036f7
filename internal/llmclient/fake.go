package llmclient

import (
	"context"
	"sync"
)

// FakeClient returns canned responses for offline runs and tests, recording
// every call it receives.
type FakeClient struct {
	mu        sync.Mutex
	Response  string
	Err       error
	Calls     [][]Message
	MaxTokens []int
}

func NewFakeClient(response string) *FakeClient {
	return &FakeClient{Response: response}
}

func (f *FakeClient) Name() string { return "FakeLLM" }

func (f *FakeClient) Complete(_ context.Context, messages []Message, maxTokens int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := make([]Message, len(messages))
	copy(copied, messages)
	f.Calls = append(f.Calls, copied)
	f.MaxTokens = append(f.MaxTokens, maxTokens)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}

// CallCount returns how many completions were requested.
func (f *FakeClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}
