package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peacematcher/assistant-api/assistant"
	"github.com/peacematcher/assistant-api/chat"
	"github.com/peacematcher/assistant-api/logging"
	"github.com/peacematcher/assistant-api/metrics"
	"github.com/peacematcher/assistant-api/validation"
)

// HandleChat runs the chat pipeline: decode, validate, analyze, respond.
func HandleChat(service *chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chat.Request
		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(&req); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid request data",
				[]validation.FieldError{{Path: "body", Message: "must be a valid JSON object"}})
			metrics.ChatRequestTotals.WithLabelValues("unknown", "invalid").Inc()
			return
		}

		if fieldErrors := validation.ValidateStruct(req); len(fieldErrors) > 0 {
			RespondWithError(w, http.StatusBadRequest, "Invalid request data", fieldErrors)
			metrics.ChatRequestTotals.WithLabelValues(requestContextLabel(&req), "invalid").Inc()
			return
		}

		resp, err := service.Handle(r.Context(), &req)
		if err != nil {
			contextLabel := requestContextLabel(&req)
			if errors.Is(err, chat.ErrEmptyMessage) {
				RespondWithError(w, http.StatusBadRequest, "Invalid request data",
					[]validation.FieldError{{Path: "message", Message: "message is required"}})
				metrics.ChatRequestTotals.WithLabelValues(contextLabel, "invalid").Inc()
				return
			}
			if assistant.IsServiceError(err) {
				logging.Error("AI gateway request failed", "error", err)
				RespondWithError(w, http.StatusServiceUnavailable, "AI service unavailable",
					"Failed to generate response")
				metrics.ChatRequestTotals.WithLabelValues(contextLabel, "ai_error").Inc()
				return
			}
			logging.Error("Chat pipeline failed", "error", err)
			RespondWithError(w, http.StatusInternalServerError, "Internal server error",
				"An unexpected error occurred")
			metrics.ChatRequestTotals.WithLabelValues(contextLabel, "error").Inc()
			return
		}

		metrics.ChatRequestTotals.WithLabelValues(resp.Context, "success").Inc()
		metrics.DetectedSymptoms.Observe(float64(len(resp.Symptoms)))
		RespondWithJSON(w, http.StatusOK, resp)
	}
}

func requestContextLabel(req *chat.Request) string {
	if req.Context == chat.ContextSupport {
		return chat.ContextSupport
	}
	return chat.ContextMedical
}
