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
	"fmt"
	"math"

	"finbot/backend/assistant/openai"
	"finbot/backend/bankdata"
)

// toolFunc executes one tool against already-decoded arguments.
type toolFunc func(args map[string]any) (any, error)

type toolEntry struct {
	def openai.Tool
	run toolFunc
}

// toolRegistry is the closed catalogue of functions the model may call.
// Entries are built once at startup; the slice fixes the catalogue order
// sent to the model and the index serves dispatch by name.
type toolRegistry struct {
	entries []toolEntry
	index   map[string]int
}

// noParams is the schema for tools that take no arguments.
func noParams() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
		"required":   []string{},
	}
}

func newToolRegistry(data *bankdata.Provider) *toolRegistry {
	r := &toolRegistry{index: make(map[string]int)}

	r.register(openai.NewFunctionTool(
		"get_customer_info",
		"Get the customer's account details: name, account number, account type, email, phone and joining date.",
		noParams(),
	), func(map[string]any) (any, error) {
		return data.Customer(), nil
	})

	r.register(openai.NewFunctionTool(
		"get_current_week_transactions",
		"Get all transactions for the current week, from Monday through today.",
		noParams(),
	), func(map[string]any) (any, error) {
		return wrapTransactions(data.CurrentWeekTransactions())
	})

	r.register(openai.NewFunctionTool(
		"get_current_month_transactions",
		"Get all transactions for the current calendar month, from the 1st through today.",
		noParams(),
	), func(map[string]any) (any, error) {
		return wrapTransactions(data.CurrentMonthTransactions())
	})

	r.register(openai.NewFunctionTool(
		"get_current_year_transactions",
		"Get all transactions for the current year, from January 1st through today.",
		noParams(),
	), func(map[string]any) (any, error) {
		return wrapTransactions(data.CurrentYearTransactions())
	})

	r.register(openai.NewFunctionTool(
		"get_transactions_by_date_range",
		"Get all transactions between two dates (inclusive). Dates must be in YYYY-MM-DD format.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"start_date": map[string]any{
					"type":        "string",
					"description": "Start of the range in YYYY-MM-DD format",
				},
				"end_date": map[string]any{
					"type":        "string",
					"description": "End of the range in YYYY-MM-DD format",
				},
			},
			"required": []string{"start_date", "end_date"},
		},
	), func(args map[string]any) (any, error) {
		start, err := stringArg(args, "start_date")
		if err != nil {
			return nil, err
		}
		end, err := stringArg(args, "end_date")
		if err != nil {
			return nil, err
		}
		return wrapTransactions(data.TransactionsByDateRange(start, end))
	})

	r.register(openai.NewFunctionTool(
		"get_transactions_last_n_days",
		"Get all transactions from the last N days, including today.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"days": map[string]any{
					"type":        "integer",
					"description": "Number of days to look back, e.g. 7 for the last week",
				},
			},
			"required": []string{"days"},
		},
	), func(args map[string]any) (any, error) {
		days, err := positiveIntArg(args, "days")
		if err != nil {
			return nil, err
		}
		end := data.Now()
		start := end.AddDate(0, 0, -days)
		return wrapTransactions(data.TransactionsByDateRange(
			start.Format(bankdata.DateLayout), end.Format(bankdata.DateLayout)))
	})

	r.register(openai.NewFunctionTool(
		"get_transactions_last_n_months",
		"Get all transactions from the last N months, including today. A month is treated as 30 days.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"months": map[string]any{
					"type":        "integer",
					"description": "Number of months to look back, e.g. 3 for the last quarter",
				},
			},
			"required": []string{"months"},
		},
	), func(args map[string]any) (any, error) {
		months, err := positiveIntArg(args, "months")
		if err != nil {
			return nil, err
		}
		// A month counts as 30 days here on purpose. Calendar-month
		// arithmetic would shift answers for existing queries.
		end := data.Now()
		start := end.AddDate(0, 0, -months*30)
		return wrapTransactions(data.TransactionsByDateRange(
			start.Format(bankdata.DateLayout), end.Format(bankdata.DateLayout)))
	})

	return r
}

func (r *toolRegistry) register(def openai.Tool, run toolFunc) {
	r.index[def.Function.Name] = len(r.entries)
	r.entries = append(r.entries, toolEntry{def: def, run: run})
}

// catalogue returns the tool declarations in registration order.
func (r *toolRegistry) catalogue() []openai.Tool {
	defs := make([]openai.Tool, len(r.entries))
	for i, e := range r.entries {
		defs[i] = e.def
	}
	return defs
}

// dispatch executes one tool call and returns the JSON result content for
// the model. It never fails: unknown tools, malformed arguments and query
// errors all come back as an {"error": ...} payload so the model can adapt
// or explain instead of the round aborting.
func (r *toolRegistry) dispatch(name, rawArgs string) string {
	i, ok := r.index[name]
	if !ok {
		return errorPayload(fmt.Sprintf("unknown tool: %s", name))
	}

	args := map[string]any{}
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return errorPayload(fmt.Sprintf("invalid arguments for %s: %v", name, err))
		}
	}

	result, err := r.entries[i].run(args)
	if err != nil {
		return errorPayload(err.Error())
	}

	content, err := json.Marshal(result)
	if err != nil {
		return errorPayload(fmt.Sprintf("failed to serialize %s result: %v", name, err))
	}
	return string(content)
}

// wrapTransactions packages a transaction query result with its count so
// the model does not have to count list items itself.
func wrapTransactions(txns []bankdata.Transaction, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"count":        len(txns),
		"transactions": txns,
	}, nil
}

func errorPayload(message string) string {
	content, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		return `{"error": "internal error"}`
	}
	return string(content)
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing required argument: %s", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %s must be a string", name)
	}
	return s, nil
}

// positiveIntArg accepts the JSON number the model sends (decoded as
// float64) and requires it to be a positive whole number.
func positiveIntArg(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing required argument: %s", name)
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("argument %s must be a whole number", name)
	}
	n := int(f)
	if n <= 0 {
		return 0, fmt.Errorf("argument %s must be positive", name)
	}
	return n, nil
}
