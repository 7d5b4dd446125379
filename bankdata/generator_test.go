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

package bankdata

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var genNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func TestGenerateTransactions_Deterministic(t *testing.T) {
	first := GenerateTransactions(genNow, 42)
	second := GenerateTransactions(genNow, 42)
	assert.Equal(t, first, second)
}

func TestGenerateTransactions_SortedAscending(t *testing.T) {
	txns := GenerateTransactions(genNow, 42)
	require.NotEmpty(t, txns)

	for i := 1; i < len(txns); i++ {
		assert.LessOrEqual(t, txns[i-1].Date, txns[i].Date)
	}
}

func TestGenerateTransactions_WithinWindow(t *testing.T) {
	txns := GenerateTransactions(genNow, 7)

	for _, txn := range txns {
		assert.GreaterOrEqual(t, txn.Date, "2025-01-01")
		assert.LessOrEqual(t, txn.Date, "2025-03-15")
	}
}

func TestGenerateTransactions_IDsSequential(t *testing.T) {
	txns := GenerateTransactions(genNow, 42)

	seen := make(map[string]bool, len(txns))
	for _, txn := range txns {
		assert.Regexp(t, `^TXN\d{6}$`, txn.TransactionID)
		assert.False(t, seen[txn.TransactionID], "duplicate id %s", txn.TransactionID)
		seen[txn.TransactionID] = true
	}
}

func TestGenerateTransactions_BalancesNonNegative(t *testing.T) {
	txns := GenerateTransactions(genNow, 42)

	for _, txn := range txns {
		assert.GreaterOrEqual(t, txn.Balance, 0.0)
	}
}

func TestGenerateTransactions_AmountSignMatchesType(t *testing.T) {
	txns := GenerateTransactions(genNow, 42)

	for _, txn := range txns {
		switch txn.TransactionType {
		case "debit":
			assert.Negative(t, txn.Amount, "debit %s", txn.TransactionID)
		case "credit":
			assert.Positive(t, txn.Amount, "credit %s", txn.TransactionID)
		default:
			t.Fatalf("unexpected transaction type %q", txn.TransactionType)
		}
	}
}

func TestGenerateTransactions_MonthlyRecurring(t *testing.T) {
	txns := GenerateTransactions(genNow, 42)

	byDateCategory := make(map[string]int)
	for _, txn := range txns {
		byDateCategory[txn.Date+"/"+txn.Category]++
	}

	for _, month := range []int{1, 2, 3} {
		salary := fmt.Sprintf("2025-%02d-01/Salary", month)
		rent := fmt.Sprintf("2025-%02d-05/Rent", month)
		assert.GreaterOrEqual(t, byDateCategory[salary], 1, "no salary in month %d", month)
		assert.GreaterOrEqual(t, byDateCategory[rent], 1, "no rent in month %d", month)
	}
}

func TestGenerateTransactions_SalaryIsDirectDeposit(t *testing.T) {
	txns := GenerateTransactions(genNow, 42)

	for _, txn := range txns {
		if txn.Category == "Salary" {
			assert.Equal(t, "credit", txn.TransactionType)
			assert.Equal(t, "direct_deposit", txn.PaymentMethod)
			assert.Equal(t, "Employer Direct Deposit", txn.Merchant)
		}
	}
}

func TestNewSampleProvider(t *testing.T) {
	p := NewSampleProvider()

	assert.Equal(t, "CUST001", p.Customer().CustomerID)
	assert.NotEmpty(t, p.AllTransactions())
}
