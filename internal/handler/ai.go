package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"akorfa/internal/archive"
	"akorfa/internal/diagnostic"
	"akorfa/internal/entity"
	"akorfa/internal/llmclient"
	"akorfa/internal/repository/history"
)

// AIHandler serves the three completion-backed endpoints. The pipeline owns
// prompt assembly and interpretation; this layer owns request decoding,
// persistence, and error surfacing.
type AIHandler struct {
	pipeline *diagnostic.Pipeline
	history  history.Store
	archiver archive.Archiver
}

func NewAIHandler(pipeline *diagnostic.Pipeline, hist history.Store, archiver archive.Archiver) *AIHandler {
	if archiver == nil {
		archiver = archive.Nop{}
	}
	return &AIHandler{pipeline: pipeline, history: hist, archiver: archiver}
}

// assessmentPayload is the fixed five-field score block every AI request
// carries. Field order matches the personal-profile layer order; every
// profile binds the same five positions.
type assessmentPayload struct {
	BioHardware      float64 `json:"bioHardware"`
	InternalOS       float64 `json:"internalOS"`
	CulturalSoftware float64 `json:"culturalSoftware"`
	SocialInstance   float64 `json:"socialInstance"`
	ConsciousUser    float64 `json:"consciousUser"`
}

func (a assessmentPayload) vector() []float64 {
	return []float64{a.BioHardware, a.InternalOS, a.CulturalSoftware, a.SocialInstance, a.ConsciousUser}
}

func (h *AIHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Message             string            `json:"message"`
		AssessmentData      assessmentPayload `json:"assessmentData"`
		Purpose             string            `json:"purpose"`
		ConversationHistory []diagnostic.Turn `json:"conversationHistory"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	message := strings.TrimSpace(in.Message)
	if message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	user := entity.UserFrom(r.Context())

	reply, err := h.pipeline.Chat(r.Context(), in.Purpose, in.AssessmentData.vector(), in.ConversationHistory, message)
	if err != nil {
		writeCompletionFailure(w, "chat", err)
		return
	}

	// The user turn is persisted before its paired assistant reply so a
	// single user's sequence stays ordered. Persistence problems are
	// logged, not surfaced: the reply already exists.
	if err := h.history.InsertChatTurn(r.Context(), user.String(), llmclient.RoleUser, message); err != nil {
		log.Printf("chat: persist user turn: %v", err)
	}
	if err := h.history.InsertChatTurn(r.Context(), user.String(), llmclient.RoleAssistant, reply); err != nil {
		log.Printf("chat: persist assistant turn: %v", err)
	}
	h.archiveTranscript(r, user, "chat", []byte(reply))

	writeJSON(w, map[string]any{"response": reply})
}

func (h *AIHandler) HandleDiagnosis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Scenario       string            `json:"scenario"`
		AssessmentData assessmentPayload `json:"assessmentData"`
		Purpose        string            `json:"purpose"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	scenario := strings.TrimSpace(in.Scenario)
	if scenario == "" {
		http.Error(w, "scenario is required", http.StatusBadRequest)
		return
	}
	user := entity.UserFrom(r.Context())

	diagnosis, err := h.pipeline.Diagnose(r.Context(), in.Purpose, scenario, in.AssessmentData.vector())
	if err != nil {
		writeCompletionFailure(w, "diagnosis", err)
		return
	}

	diagnosisJSON, err := json.Marshal(diagnosis)
	if err != nil {
		http.Error(w, "failed to encode diagnosis", http.StatusInternalServerError)
		return
	}
	if err := h.history.InsertDiagnosis(r.Context(), user.String(), scenario, diagnosisJSON); err != nil {
		log.Printf("diagnosis: persist: %v", err)
	}
	h.archiveTranscript(r, user, "diagnosis", diagnosisJSON)

	writeJSON(w, diagnosis)
}

func (h *AIHandler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		AssessmentData assessmentPayload `json:"assessmentData"`
		Purpose        string            `json:"purpose"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	user := entity.UserFrom(r.Context())

	insights, err := h.pipeline.Insights(r.Context(), in.Purpose, in.AssessmentData.vector())
	if err != nil {
		writeCompletionFailure(w, "insights", err)
		return
	}
	h.archiveTranscript(r, user, "insights", []byte(insights))

	writeJSON(w, map[string]any{"insights": insights})
}

func (h *AIHandler) HandleChatHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user := entity.UserFrom(r.Context())
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	turns, err := h.history.ListChatTurns(r.Context(), user.String(), limit)
	if err != nil {
		log.Printf("chat history: list: %v", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"turns": turns})
}

func (h *AIHandler) archiveTranscript(r *http.Request, user entity.UserID, mode string, content []byte) {
	if err := h.archiver.Archive(r.Context(), user.String(), mode, content); err != nil {
		log.Printf("%s: archive transcript: %v", mode, err)
	}
}

// writeCompletionFailure maps invoker failures to the generic user-facing
// error. Both the missing-credential and upstream cases are 500s; neither
// is retried here.
func writeCompletionFailure(w http.ResponseWriter, mode string, err error) {
	var upstream *llmclient.UpstreamError
	switch {
	case errors.Is(err, llmclient.ErrMissingCredential):
		log.Printf("%s: completion service is not configured: %v", mode, err)
	case errors.As(err, &upstream):
		log.Printf("%s: completion service failed: %v", mode, err)
	default:
		log.Printf("%s: %v", mode, err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	http.Error(w, "failed to get response", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
