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

// Package main is the entry point for the FinBot API service.
//
// FinBot is a conversational financial assistant that answers natural
// language questions about a customer's bank transactions. It drives an
// OpenAI chat model through a bounded tool-calling loop, fetching exactly
// the transaction data each question needs.
//
// Usage:
//
//	./finbot
//
// Environment Variables:
//
//	PORT            - HTTP server port (default: 8000)
//	OPENAI_API_KEY  - OpenAI API key (optional; assistant replies are
//	                  disabled per-request when missing)
//	OPENAI_MODEL    - Chat model override (default: gpt-4.1)
//	OPENAI_BASE_URL - API endpoint override (default: https://api.openai.com/v1)
package main

import (
	"finbot/backend/assistant"
)

func main() {
	assistant.Run()
}
