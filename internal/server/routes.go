package server

import (
	"net/http"

	"akorfa/internal/handler"
	"akorfa/internal/server/middleware"
)

func NewMux(aiHandler *handler.AIHandler, assessmentHandler *handler.AssessmentHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/ai/chat", aiHandler.HandleChat)
	mux.HandleFunc("/api/ai/chat/history", aiHandler.HandleChatHistory)
	mux.HandleFunc("/api/ai/diagnosis", aiHandler.HandleDiagnosis)
	mux.HandleFunc("/api/ai/insights", aiHandler.HandleInsights)
	mux.HandleFunc("/api/assessment", assessmentHandler.Handle)
	mux.HandleFunc("/healthz", handler.HandleHealth)

	return middleware.CORS(middleware.RequireUser(mux))
}
