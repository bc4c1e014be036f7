package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"akorfa/internal/diagnostic"
	"akorfa/internal/handler"
	"akorfa/internal/llmclient"
	"akorfa/internal/repository/assessment"
	"akorfa/internal/repository/history"
)

type testEnv struct {
	mux     http.Handler
	fake    *llmclient.FakeClient
	history *history.MemoryStore
}

func newTestEnv(response string) *testEnv {
	fake := llmclient.NewFakeClient(response)
	hist := history.NewMemoryStore()
	pipeline := diagnostic.NewPipeline(fake, 800)
	mux := NewMux(
		handler.NewAIHandler(pipeline, hist, nil),
		handler.NewAssessmentHandler(assessment.NewMemoryStore()),
	)
	return &testEnv{mux: mux, fake: fake, history: hist}
}

func (e *testEnv) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

var scores = map[string]float64{
	"bioHardware": 3, "internalOS": 8, "culturalSoftware": 5, "socialInstance": 9, "consciousUser": 2,
}

func TestChat_PersistsBothTurns(t *testing.T) {
	env := newTestEnv("try an earlier bedtime")

	rec := env.do(t, http.MethodPost, "/api/ai/chat", "u1", map[string]any{
		"message":        "I am always tired",
		"assessmentData": scores,
		"purpose":        "personal",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "try an earlier bedtime", out.Response)

	turns, err := env.history.ListChatTurns(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	require.Equal(t, "user", turns[0].Role)
	require.Equal(t, "I am always tired", turns[0].Content)
	require.Equal(t, "assistant", turns[1].Role)
}

func TestChat_RequiresAuthenticatedUser(t *testing.T) {
	env := newTestEnv("reply")
	rec := env.do(t, http.MethodPost, "/api/ai/chat", "", map[string]any{
		"message":        "hi",
		"assessmentData": scores,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, 0, env.fake.CallCount())
}

func TestChat_UpstreamFailureIsGeneric(t *testing.T) {
	env := newTestEnv("")
	env.fake.Err = &llmclient.UpstreamError{Provider: "openai", Status: "500"}

	rec := env.do(t, http.MethodPost, "/api/ai/chat", "u1", map[string]any{
		"message":        "hi",
		"assessmentData": scores,
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "failed to get response")
}

func TestDiagnosis_FallbackShapeOnProseReply(t *testing.T) {
	env := newTestEnv("not json at all")

	rec := env.do(t, http.MethodPost, "/api/ai/diagnosis", "u1", map[string]any{
		"scenario":       "everything is on fire",
		"assessmentData": scores,
		"purpose":        "team",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var d diagnostic.Diagnosis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	require.Equal(t, "not json at all", d.Summary)
	require.Len(t, d.ActionSteps, 3)

	recs := env.history.Diagnoses("u1")
	require.Len(t, recs, 1)
	require.Equal(t, "everything is on fire", recs[0].Scenario)
}

func TestDiagnosis_StructuredReplyRoundTrips(t *testing.T) {
	env := newTestEnv(`{"summary":"norms drift","rootCauses":[{"layer":"Working Agreements","explanation":"unwritten rules"}],"actionSteps":[{"action":"a","description":"d","timeline":"t"}],"whyItHelps":"w"}`)

	rec := env.do(t, http.MethodPost, "/api/ai/diagnosis", "u1", map[string]any{
		"scenario":       "deadlines slip",
		"assessmentData": scores,
		"purpose":        "team",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var d diagnostic.Diagnosis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	require.Equal(t, "norms drift", d.Summary)
	require.Len(t, d.RootCauses, 1)
}

func TestInsights_TeamEnumeration(t *testing.T) {
	env := newTestEnv("insight text")

	uniform := map[string]float64{
		"bioHardware": 6, "internalOS": 6, "culturalSoftware": 6, "socialInstance": 6, "consciousUser": 6,
	}
	rec := env.do(t, http.MethodPost, "/api/ai/insights", "u1", map[string]any{
		"assessmentData": uniform,
		"purpose":        "team",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Insights string `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "insight text", out.Insights)

	prompt := env.fake.Calls[0][0].Content
	require.Contains(t, prompt, "1. TEAM ENERGY (score: 6)")
	require.NotContains(t, prompt, "0. ")
}

func TestAssessment_SaveAndFetch(t *testing.T) {
	env := newTestEnv("")

	rec := env.do(t, http.MethodPost, "/api/assessment", "u1", map[string]any{
		"assessmentData": scores,
		"purpose":        "business",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/assessment", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Purpose        string             `json:"purpose"`
		AssessmentData map[string]float64 `json:"assessmentData"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "business", out.Purpose)
	require.Equal(t, float64(2), out.AssessmentData["consciousUser"])
}

func TestHealthz_NoAuthRequired(t *testing.T) {
	env := newTestEnv("")
	rec := env.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "ok"))
}

func TestChatHistory_Endpoint(t *testing.T) {
	env := newTestEnv("a reply")
	_ = env.do(t, http.MethodPost, "/api/ai/chat", "u1", map[string]any{
		"message":        "first",
		"assessmentData": scores,
	})

	rec := env.do(t, http.MethodGet, "/api/ai/chat/history?limit=10", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Turns []history.ChatTurn `json:"turns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Turns, 2)
}
