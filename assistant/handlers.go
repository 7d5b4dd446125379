// Copyright 2025 FinBot
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package assistant

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"finbot/backend/shared/logger"
)

const (
	maxQueryLength   = 1000
	maxHistoryLength = 100
)

// chatMessage is one conversation turn on the transport, as the frontend
// sends it. URL is an optional attachment reference the backend passes
// through untouched.
type chatMessage struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
	URL    string `json:"url,omitempty"`
}

type botRequest struct {
	UserAsk             string        `json:"userAsk"`
	ConversationHistory []chatMessage `json:"conversationHistory"`
}

type botResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// API is the HTTP surface of the assistant.
type API struct {
	orch *Orchestrator
	log  *logger.Logger
}

// NewAPI creates the HTTP API around an orchestrator.
func NewAPI(orch *Orchestrator, log *logger.Logger) *API {
	return &API{orch: orch, log: log}
}

// Routes builds the service router.
func (a *API) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/getBotResponse", a.handleBotResponse).Methods("POST")
	r.HandleFunc("/health", a.handleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}

func (a *API) handleBotResponse(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	requestID := uuid.NewString()

	// Residual faults become a failure envelope, never a stack trace.
	defer func() {
		if rec := recover(); rec != nil {
			a.log.Error(requestID, "panic while handling chat request", map[string]interface{}{"panic": rec})
			promRequestsTotal.WithLabelValues("error").Inc()
			writeJSON(w, http.StatusInternalServerError, botResponse{Success: false, Error: "Failed to process query"})
		}
	}()

	var req botRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		promRequestsTotal.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusBadRequest, botResponse{Success: false, Error: "Invalid request body"})
		return
	}

	query := strings.TrimSpace(req.UserAsk)
	if query == "" {
		a.log.Warn(requestID, "received empty query", nil)
		promRequestsTotal.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusOK, botResponse{Success: false, Error: "Query cannot be empty"})
		return
	}
	if len(query) > maxQueryLength {
		a.log.Warn(requestID, "query too long", map[string]interface{}{"length": len(query)})
		promRequestsTotal.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusOK, botResponse{Success: false, Error: "Query is too long. Please limit to 1000 characters."})
		return
	}
	if len(req.ConversationHistory) > maxHistoryLength {
		a.log.Warn(requestID, "conversation history too long", map[string]interface{}{"turns": len(req.ConversationHistory)})
		promRequestsTotal.WithLabelValues("invalid").Inc()
		writeJSON(w, http.StatusOK, botResponse{Success: false, Error: "Conversation history is too long. Please start a new conversation."})
		return
	}

	history := make([]HistoryMessage, len(req.ConversationHistory))
	for i, turn := range req.ConversationHistory {
		history[i] = HistoryMessage{Text: turn.Text, IsUser: turn.IsUser}
	}

	a.log.Info(requestID, "processing query", map[string]interface{}{"preview": preview(query)})
	answer := a.orch.Answer(r.Context(), requestID, query, history)

	promRequestsTotal.WithLabelValues("success").Inc()
	promRequestDuration.Observe(float64(time.Since(startTime).Milliseconds()))
	writeJSON(w, http.StatusOK, botResponse{Success: true, Response: answer})
}

// handleHealth is a liveness probe. It reports healthy regardless of LLM
// availability: the process can always serve validation and fixed replies.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "finbot",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func preview(query string) string {
	if len(query) > 50 {
		return query[:50] + "..."
	}
	return query
}
