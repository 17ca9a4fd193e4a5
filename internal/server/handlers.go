package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sozercan/health-agent/apimodels"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{Detail: fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	if req.Logs == nil {
		writeJSON(w, http.StatusUnprocessableEntity, apimodels.ErrorResponse{Detail: "field 'logs' is required"})
		return
	}

	slog.Debug("Received analysis request", "log_bytes", len(*req.Logs))

	result := s.analyzer.Analyze(r.Context(), *req.Logs)
	if !result.Success() {
		slog.Error("Analysis request failed", "error", result.Error)
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}

	slog.Debug("Analysis request completed successfully", "severity", result.Analysis.Severity)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGenerateLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.generator.Generate())
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "DevOps Health Monitor API is running!",
		"status":  "healthy",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
