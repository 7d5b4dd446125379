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
	"math"
	"math/rand"
	"time"
)

const openingBalance = 10000.0

// categoryProfile describes how transactions in one category are generated.
type categoryProfile struct {
	name      string
	merchants []string
	minAmount float64
	maxAmount float64
	frequency string // "high", "medium", "low", "monthly"
	txnType   string // "debit" or "credit"
}

// categoryProfiles is the fixed generation catalogue. Order matters: the
// weighted category draw indexes into this slice, so a stable order keeps
// seeded generation reproducible.
var categoryProfiles = []categoryProfile{
	{"Groceries", []string{"Whole Foods", "Trader Joe's", "Safeway", "Walmart", "Target"}, 30, 150, "high", "debit"},
	{"Utilities", []string{"PG&E Electric", "Water District", "Internet Provider", "Gas Company"}, 50, 200, "monthly", "debit"},
	{"Entertainment", []string{"AMC Theaters", "Spotify", "Netflix", "HBO Max", "Disney+", "Concert Tickets"}, 10, 100, "medium", "debit"},
	{"Transport", []string{"Uber", "Lyft", "Gas Station", "BART Transit", "Parking Meter"}, 5, 60, "high", "debit"},
	{"Dining", []string{"Starbucks", "Chipotle", "McDonald's", "Olive Garden", "Local Restaurant", "Pizza Hut"}, 8, 75, "high", "debit"},
	{"Shopping", []string{"Amazon", "Best Buy", "Macy's", "Nike Store", "Apple Store", "IKEA"}, 25, 300, "medium", "debit"},
	{"Healthcare", []string{"CVS Pharmacy", "Doctor's Office", "Health Insurance", "Dentist"}, 20, 250, "low", "debit"},
	{"Subscriptions", []string{"Netflix", "Spotify Premium", "Amazon Prime", "Adobe Creative Cloud", "Gym Membership"}, 10, 50, "monthly", "debit"},
	{"Salary", []string{"Employer Direct Deposit"}, 4500, 5000, "monthly", "credit"},
	{"Rent", []string{"Property Management"}, 1800, 2000, "monthly", "debit"},
}

var paymentMethods = []string{"card", "UPI", "NEFT", "cash", "direct_debit"}

// monthlyOnly marks categories that only occur on their fixed day of month.
var monthlyOnly = map[string]bool{
	"Salary":        true,
	"Rent":          true,
	"Utilities":     true,
	"Subscriptions": true,
}

// SampleCustomer returns the single fixed customer profile.
func SampleCustomer() Customer {
	return Customer{
		CustomerID:    "CUST001",
		Name:          "John Doe",
		AccountNumber: "****1234",
		AccountType:   "savings",
		Email:         "john.doe@email.com",
		Phone:         "+1234567890",
		JoiningDate:   "2020-01-15",
	}
}

// GenerateTransactions synthesizes a transaction history from January 1st
// of now's year through now. Salary lands on the 1st, rent on the 5th,
// utilities and subscriptions (each with 70% probability) on the 10th,
// plus 2-5 random weekday or 1-3 weekend transactions per day. The result
// is sorted ascending by date. The same seed yields the same history.
func GenerateTransactions(now time.Time, seed int64) []Transaction {
	rng := rand.New(rand.NewSource(seed))
	gen := &generator{rng: rng, balance: openingBalance, nextID: 1}

	day := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	var transactions []Transaction
	for !day.After(now) {
		switch day.Day() {
		case 1:
			transactions = append(transactions, gen.create(day, "Salary"))
		case 5:
			transactions = append(transactions, gen.create(day, "Rent"))
		case 10:
			for _, category := range []string{"Utilities", "Subscriptions"} {
				if gen.rng.Float64() > 0.3 {
					transactions = append(transactions, gen.create(day, category))
				}
			}
		}

		var dailyCount int
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			dailyCount = 1 + gen.rng.Intn(3) // weekend: 1-3
		} else {
			dailyCount = 2 + gen.rng.Intn(4) // weekday: 2-5
		}
		for i := 0; i < dailyCount; i++ {
			category := gen.drawCategory()
			if monthlyOnly[category] {
				// Fixed-day categories were already handled above.
				continue
			}
			transactions = append(transactions, gen.create(day, category))
		}

		day = day.AddDate(0, 0, 1)
	}

	return transactions
}

type generator struct {
	rng     *rand.Rand
	balance float64
	nextID  int
}

// drawCategory picks a category weighted by its frequency class.
func (g *generator) drawCategory() string {
	total := 0.0
	for _, p := range categoryProfiles {
		total += frequencyWeight(p.frequency)
	}
	r := g.rng.Float64() * total
	for _, p := range categoryProfiles {
		r -= frequencyWeight(p.frequency)
		if r <= 0 {
			return p.name
		}
	}
	return categoryProfiles[0].name
}

func frequencyWeight(frequency string) float64 {
	switch frequency {
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 0.5
	default: // monthly
		return 0.3
	}
}

// create builds one transaction and advances the running balance. The
// recorded balance is clamped at zero but the running balance is not,
// matching the dataset's original behavior.
func (g *generator) create(date time.Time, category string) Transaction {
	profile := profileFor(category)
	merchant := profile.merchants[g.rng.Intn(len(profile.merchants))]

	amount := roundCents(profile.minAmount + g.rng.Float64()*(profile.maxAmount-profile.minAmount))
	if profile.txnType == "debit" {
		amount = -amount
	}

	g.balance = roundCents(g.balance + amount)
	recorded := g.balance
	if recorded < 0 {
		recorded = 0
	}

	paymentMethod := "direct_deposit"
	if profile.txnType != "credit" {
		paymentMethod = paymentMethods[g.rng.Intn(len(paymentMethods))]
	}

	txn := Transaction{
		TransactionID:   fmt.Sprintf("TXN%06d", g.nextID),
		Date:            date.Format(DateLayout),
		Description:     fmt.Sprintf("%s - %s", merchant, category),
		Amount:          amount,
		Category:        category,
		TransactionType: profile.txnType,
		Balance:         recorded,
		Merchant:        merchant,
		PaymentMethod:   paymentMethod,
	}
	g.nextID++
	return txn
}

func profileFor(category string) categoryProfile {
	for _, p := range categoryProfiles {
		if p.name == category {
			return p
		}
	}
	panic(fmt.Sprintf("unknown transaction category: %s", category))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
