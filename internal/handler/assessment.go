package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"akorfa/internal/entity"
	"akorfa/internal/repository/assessment"
)

// AssessmentHandler saves and returns a user's layer scores. Reads never
// 404: a user without a saved assessment gets the default record.
type AssessmentHandler struct {
	store assessment.Store
}

func NewAssessmentHandler(store assessment.Store) *AssessmentHandler {
	return &AssessmentHandler{store: store}
}

func (h *AssessmentHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.save(w, r)
	case http.MethodGet:
		h.get(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *AssessmentHandler) save(w http.ResponseWriter, r *http.Request) {
	var in struct {
		AssessmentData assessmentPayload `json:"assessmentData"`
		Purpose        string            `json:"purpose"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	user := entity.UserFrom(r.Context())
	rec := assessment.Record{
		UserID:           user.String(),
		Purpose:          in.Purpose,
		BioHardware:      in.AssessmentData.BioHardware,
		InternalOS:       in.AssessmentData.InternalOS,
		CulturalSoftware: in.AssessmentData.CulturalSoftware,
		SocialInstance:   in.AssessmentData.SocialInstance,
		ConsciousUser:    in.AssessmentData.ConsciousUser,
	}
	if rec.Purpose == "" {
		rec.Purpose = "personal"
	}
	if err := h.store.Upsert(r.Context(), rec); err != nil {
		log.Printf("assessment: upsert: %v", err)
		http.Error(w, "failed to save assessment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (h *AssessmentHandler) get(w http.ResponseWriter, r *http.Request) {
	user := entity.UserFrom(r.Context())
	rec, err := h.store.GetOrDefault(r.Context(), user.String())
	if err != nil {
		log.Printf("assessment: get: %v", err)
		http.Error(w, "failed to load assessment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{
		"purpose": rec.Purpose,
		"assessmentData": assessmentPayload{
			BioHardware:      rec.BioHardware,
			InternalOS:       rec.InternalOS,
			CulturalSoftware: rec.CulturalSoftware,
			SocialInstance:   rec.SocialInstance,
			ConsciousUser:    rec.ConsciousUser,
		},
	})
}
