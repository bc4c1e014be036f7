// Package llmclient wraps external text-completion services behind a small
// pass-through interface. Cross-cutting policy (retries, caching, rate
// limiting) is deliberately absent: failures propagate to the caller.
package llmclient

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingCredential is returned before any network attempt when the
// provider credential is not configured.
var ErrMissingCredential = errors.New("llmclient: api key is not configured")

// UpstreamError reports a non-success response or transport failure from
// the completion service.
type UpstreamError struct {
	Provider string
	Status   string
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llmclient: %s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("llmclient: %s unexpected status %s: %s", e.Provider, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Message is one role-tagged prompt message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client is a text-completion service.
type Client interface {
	Name() string
	// Complete sends the messages and returns the assistant's text.
	// maxTokens <= 0 means the client's default cap.
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}
