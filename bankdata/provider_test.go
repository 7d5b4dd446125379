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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow anchors window queries: Wednesday 2025-08-20. The ISO week
// starts Monday 2025-08-18.
var fixedNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func testTransactions() []Transaction {
	dates := []string{
		"2024-12-31",
		"2025-01-10",
		"2025-07-15",
		"2025-08-01",
		"2025-08-05",
		"2025-08-12",
		"2025-08-18",
		"2025-08-19",
		"2025-08-20",
	}
	txns := make([]Transaction, len(dates))
	for i, d := range dates {
		txns[i] = Transaction{
			TransactionID:   "TXN" + d,
			Date:            d,
			Description:     "Test - Dining",
			Amount:          -10.50,
			Category:        "Dining",
			TransactionType: "debit",
			Balance:         100,
			Merchant:        "Test",
			PaymentMethod:   "card",
		}
	}
	return txns
}

func testProvider() *Provider {
	p := NewProvider(SampleCustomer(), testTransactions())
	p.Now = func() time.Time { return fixedNow }
	return p
}

func TestProvider_Customer(t *testing.T) {
	p := testProvider()

	customer := p.Customer()
	assert.Equal(t, "CUST001", customer.CustomerID)
	assert.Equal(t, "savings", customer.AccountType)
	assert.Equal(t, "****1234", customer.AccountNumber)
}

func TestProvider_AllTransactions(t *testing.T) {
	p := testProvider()

	all := p.AllTransactions()
	require.Len(t, all, 9)

	// Mutating the returned slice must not touch the dataset.
	all[0].Amount = 9999
	assert.Equal(t, -10.50, p.AllTransactions()[0].Amount)
}

func TestTransactionsByDateRange(t *testing.T) {
	p := testProvider()

	got, err := p.TransactionsByDateRange("2025-08-01", "2025-08-12")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-08-01", got[0].Date)
	assert.Equal(t, "2025-08-05", got[1].Date)
	assert.Equal(t, "2025-08-12", got[2].Date)
}

func TestTransactionsByDateRange_Idempotent(t *testing.T) {
	p := testProvider()

	first, err := p.TransactionsByDateRange("2025-01-01", "2025-12-31")
	require.NoError(t, err)
	second, err := p.TransactionsByDateRange("2025-01-01", "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTransactionsByDateRange_PreservesOrdering(t *testing.T) {
	p := testProvider()

	got, err := p.TransactionsByDateRange("2024-01-01", "2025-12-31")
	require.NoError(t, err)

	all := p.AllTransactions()
	assert.Equal(t, all, got)
}

func TestTransactionsByDateRange_EmptyResult(t *testing.T) {
	p := testProvider()

	got, err := p.TransactionsByDateRange("2023-01-01", "2023-12-31")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransactionsByDateRange_InvalidRange(t *testing.T) {
	p := testProvider()

	_, err := p.TransactionsByDateRange("2025-08-12", "2025-08-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTransactionsByDateRange_InvalidDateFormat(t *testing.T) {
	p := testProvider()

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"malformed start", "08/01/2025", "2025-08-12"},
		{"malformed end", "2025-08-01", "next tuesday"},
		{"empty start", "", "2025-08-12"},
		{"impossible date", "2025-02-30", "2025-08-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.TransactionsByDateRange(tt.start, tt.end)
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
		})
	}
}

func TestCurrentWeekTransactions(t *testing.T) {
	p := testProvider()

	got, err := p.CurrentWeekTransactions()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2025-08-18", got[0].Date)
	assert.Equal(t, "2025-08-20", got[2].Date)
}

func TestCurrentWeekTransactions_OnMonday(t *testing.T) {
	p := NewProvider(SampleCustomer(), testTransactions())
	p.Now = func() time.Time { return time.Date(2025, 8, 18, 8, 0, 0, 0, time.UTC) }

	got, err := p.CurrentWeekTransactions()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-08-18", got[0].Date)
}

func TestCurrentMonthTransactions(t *testing.T) {
	p := testProvider()

	got, err := p.CurrentMonthTransactions()
	require.NoError(t, err)
	require.Len(t, got, 6)
	assert.Equal(t, "2025-08-01", got[0].Date)
	assert.Equal(t, "2025-08-20", got[5].Date)
}

func TestCurrentYearTransactions(t *testing.T) {
	p := testProvider()

	got, err := p.CurrentYearTransactions()
	require.NoError(t, err)
	require.Len(t, got, 8)
	// The 2024-12-31 entry falls outside the year window.
	assert.Equal(t, "2025-01-10", got[0].Date)
}
