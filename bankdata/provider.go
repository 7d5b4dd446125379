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

// Package bankdata holds the in-memory transaction dataset and the typed
// read-only queries the assistant's tools are built on. The dataset is
// generated once at startup and never mutated, so a single Provider is
// safe to share across concurrent requests without locking.
package bankdata

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used throughout the dataset.
// Lexicographic comparison of dates in this layout matches chronological
// order, which the range queries rely on.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat indicates a date string that does not parse as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrInvalidRange indicates a range whose start date is after its end date.
	ErrInvalidRange = errors.New("start_date must be before or equal to end_date")
)

// Customer is the profile of the single configured account holder.
type Customer struct {
	CustomerID    string `json:"customer_id"`
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	JoiningDate   string `json:"joining_date"`
}

// Transaction is an immutable ledger entry. Amount is signed: debits are
// negative, credits positive. Balance is the resulting account balance,
// clamped to zero at generation time.
type Transaction struct {
	TransactionID   string  `json:"transaction_id"`
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	TransactionType string  `json:"transaction_type"`
	Balance         float64 `json:"balance"`
	Merchant        string  `json:"merchant"`
	PaymentMethod   string  `json:"payment_method"`
}

// Provider exposes read-only queries over a fixed transaction history.
type Provider struct {
	customer     Customer
	transactions []Transaction

	// Now anchors the current-week/month/year windows. Overridable in
	// tests; defaults to time.Now.
	Now func() time.Time
}

// NewProvider creates a Provider over the given customer and transaction
// history. Transactions must already be sorted ascending by date.
func NewProvider(customer Customer, transactions []Transaction) *Provider {
	return &Provider{
		customer:     customer,
		transactions: transactions,
		Now:          time.Now,
	}
}

// NewSampleProvider creates a Provider over the default sample customer
// and a generated year-to-date transaction history.
func NewSampleProvider() *Provider {
	now := time.Now()
	return NewProvider(SampleCustomer(), GenerateTransactions(now, now.UnixNano()))
}

// Customer returns the single configured customer.
func (p *Provider) Customer() Customer {
	return p.customer
}

// AllTransactions returns the full transaction history in ascending date order.
func (p *Provider) AllTransactions() []Transaction {
	out := make([]Transaction, len(p.transactions))
	copy(out, p.transactions)
	return out
}

// TransactionsByDateRange returns transactions with start <= date <= end,
// preserving the original ordering. An empty result is not an error.
func (p *Provider) TransactionsByDateRange(start, end string) ([]Transaction, error) {
	if _, err := time.Parse(DateLayout, start); err != nil {
		return nil, fmt.Errorf("start_date %q: %w", start, ErrInvalidDateFormat)
	}
	if _, err := time.Parse(DateLayout, end); err != nil {
		return nil, fmt.Errorf("end_date %q: %w", end, ErrInvalidDateFormat)
	}
	if start > end {
		return nil, fmt.Errorf("start_date %q, end_date %q: %w", start, end, ErrInvalidRange)
	}

	out := []Transaction{}
	for _, txn := range p.transactions {
		if txn.Date >= start && txn.Date <= end {
			out = append(out, txn)
		}
	}
	return out, nil
}

// CurrentWeekTransactions returns transactions from the start of the
// current ISO week (Monday) through today.
func (p *Provider) CurrentWeekTransactions() ([]Transaction, error) {
	now := p.Now()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	start := now.AddDate(0, 0, -daysSinceMonday)
	return p.TransactionsByDateRange(start.Format(DateLayout), now.Format(DateLayout))
}

// CurrentMonthTransactions returns transactions from the first of the
// current month through today.
func (p *Provider) CurrentMonthTransactions() ([]Transaction, error) {
	now := p.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return p.TransactionsByDateRange(start.Format(DateLayout), now.Format(DateLayout))
}

// CurrentYearTransactions returns transactions from January 1st of the
// current year through today.
func (p *Provider) CurrentYearTransactions() ([]Transaction, error) {
	now := p.Now()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return p.TransactionsByDateRange(start.Format(DateLayout), now.Format(DateLayout))
}
