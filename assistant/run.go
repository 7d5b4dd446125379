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

// Package assistant implements the FinBot conversational backend: the
// HTTP surface, the tool registry over the bank dataset, and the bounded
// tool-calling orchestration loop that drives the chat model.
package assistant

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"finbot/backend/assistant/openai"
	"finbot/backend/bankdata"
	"finbot/backend/shared/logger"
)

// Run is the exported entry point for the FinBot API service.
//
// It generates the in-memory dataset, wires the tool registry and
// orchestrator, sets up HTTP routes, and starts the server. The function
// blocks until the server shuts down.
//
// Environment variables used:
//   - PORT: HTTP server port (default: 8000)
//   - OPENAI_API_KEY: OpenAI API key (optional)
//   - OPENAI_MODEL: chat model override (optional)
//   - OPENAI_BASE_URL: API endpoint override (optional)
func Run() {
	// .env is optional; real deployments set plain environment variables.
	_ = godotenv.Load()

	log.Println("Starting FinBot API...")

	data := bankdata.NewSampleProvider()
	log.Printf("Generated %d sample transactions for customer %s",
		len(data.AllTransactions()), data.Customer().CustomerID)

	var chat ChatClient
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("WARNING: OPENAI_API_KEY not configured. Assistant replies are disabled.")
	} else {
		client, err := openai.NewClient(openai.Config{
			APIKey:  apiKey,
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   os.Getenv("OPENAI_MODEL"),
		})
		if err != nil {
			log.Printf("ERROR: Failed to initialize OpenAI client: %v", err)
		} else {
			chat = client
			log.Printf("OpenAI client configured (model: %s)", client.Model())
		}
	}

	registry := newToolRegistry(data)
	orch := NewOrchestrator(chat, registry, logger.New("orchestrator"))
	api := NewAPI(orch, logger.New("api"))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure for production
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := getEnv("PORT", "8000")
	log.Printf("FinBot API listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(api.Routes())))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
