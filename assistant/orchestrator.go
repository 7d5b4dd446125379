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
	"context"
	"errors"
	"strings"
	"time"

	"finbot/backend/assistant/openai"
	"finbot/backend/shared/logger"
)

// maxRounds caps the model round-trips per request. A looping or
// misbehaving model costs at most this many completion calls.
const maxRounds = 5

// Fixed user-facing messages. Every terminal state of the loop maps to one
// of these; raw fault text never reaches the caller.
const (
	msgEmptyQuery  = "Please provide a valid query."
	msgUnavailable = "AI service is not available. Please check the OpenAI API key configuration."
	msgExhausted   = "I'm sorry, I wasn't able to complete the analysis for that request. Please try rephrasing your question."
	msgRateLimited = "API rate limit exceeded. Please try again in a moment."
	msgAuthFailed  = "API authentication failed. Please check the API key configuration."
	msgTimeout     = "Request timed out. Please try again."
	msgGeneric     = "I encountered an error processing your request. Please try again."
)

// ChatClient is the completion surface the orchestrator drives. A nil
// ChatClient is the typed "LLM unavailable" state: the orchestrator
// answers with a fixed message instead of calling out.
type ChatClient interface {
	ChatCompletion(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error)
}

// HistoryMessage is one caller-supplied prior conversation turn.
type HistoryMessage struct {
	Text   string
	IsUser bool
}

// Orchestrator drives the bounded tool-calling exchange with the model.
// It holds no per-request state and is safe for concurrent use.
type Orchestrator struct {
	llm      ChatClient
	registry *toolRegistry
	log      *logger.Logger
}

// NewOrchestrator wires the orchestrator. Pass a nil client when no API
// key is configured; requests then get the unavailability message.
func NewOrchestrator(llm ChatClient, registry *toolRegistry, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		log:      log,
	}
}

// Answer runs one user query through the orchestration loop and returns
// the assistant's reply. The returned string is always a user-facing
// message: a model answer, a fixed prompt for valid input, or a classified
// fault message. It never returns an error.
func (o *Orchestrator) Answer(ctx context.Context, requestID, query string, history []HistoryMessage) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return msgEmptyQuery
	}
	if o.llm == nil {
		o.log.Warn(requestID, "LLM client not configured, declining query", nil)
		return msgUnavailable
	}

	transcript := buildTranscript(query, history)
	catalogue := o.registry.catalogue()

	for round := 1; round <= maxRounds; round++ {
		start := time.Now()
		resp, err := o.llm.ChatCompletion(ctx, openai.ChatRequest{
			Messages:    transcript,
			Tools:       catalogue,
			MaxTokens:   openai.DefaultMaxTokens,
			Temperature: openai.DefaultTemperature,
		})
		if err != nil {
			promLLMCalls.WithLabelValues("error").Inc()
			o.log.ErrorWithErr(requestID, "LLM call failed", err, map[string]interface{}{"round": round})
			return classifyFault(err)
		}
		promLLMCalls.WithLabelValues("success").Inc()
		promRoundDuration.Observe(float64(time.Since(start).Milliseconds()))

		if len(resp.Choices) == 0 {
			o.log.Error(requestID, "LLM returned no choices", map[string]interface{}{"round": round})
			return msgGeneric
		}
		message := resp.Choices[0].Message

		if len(message.ToolCalls) > 0 {
			transcript = append(transcript, message)
			for _, call := range message.ToolCalls {
				promToolDispatches.WithLabelValues(call.Function.Name).Inc()
				o.log.Debug(requestID, "dispatching tool", map[string]interface{}{
					"round": round,
					"tool":  call.Function.Name,
				})
				transcript = append(transcript, openai.ChatMessage{
					Role:       openai.RoleTool,
					ToolCallID: call.ID,
					Content:    o.registry.dispatch(call.Function.Name, call.Function.Arguments),
				})
			}
			continue
		}

		if answer := strings.TrimSpace(message.Content); answer != "" {
			o.log.Info(requestID, "query answered", map[string]interface{}{"rounds": round})
			return answer
		}

		// Neither tool calls nor content is an upstream protocol violation.
		o.log.Error(requestID, "LLM returned neither content nor tool calls", map[string]interface{}{"round": round})
		return msgGeneric
	}

	o.log.Warn(requestID, "iteration cap reached without final answer", map[string]interface{}{"max_rounds": maxRounds})
	return msgExhausted
}

// buildTranscript assembles the full message sequence for the model: the
// system instruction, the caller-supplied history re-threaded by author,
// and the new query as the final user turn. The full transcript is resent
// every round, keeping the backend stateless across requests.
func buildTranscript(query string, history []HistoryMessage) []openai.ChatMessage {
	transcript := make([]openai.ChatMessage, 0, len(history)+2)
	transcript = append(transcript, openai.ChatMessage{Role: openai.RoleSystem, Content: systemPrompt})
	for _, turn := range history {
		role := openai.RoleAssistant
		if turn.IsUser {
			role = openai.RoleUser
		}
		transcript = append(transcript, openai.ChatMessage{Role: role, Content: turn.Text})
	}
	return append(transcript, openai.ChatMessage{Role: openai.RoleUser, Content: query})
}

// classifyFault maps a fault from the LLM call to a user-facing message.
// Typed API errors are matched on status code first; keyword matching on
// the fault text is the fallback for untyped transport errors.
func classifyFault(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsRateLimit():
			return msgRateLimited
		case apiErr.IsAuth():
			return msgAuthFailed
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}

	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "rate_limit") || strings.Contains(text, "rate limit"):
		return msgRateLimited
	case strings.Contains(text, "authentication") || strings.Contains(text, "api_key") || strings.Contains(text, "api key"):
		return msgAuthFailed
	case strings.Contains(text, "timeout") || strings.Contains(text, "deadline exceeded"):
		return msgTimeout
	default:
		return msgGeneric
	}
}
