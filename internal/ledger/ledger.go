// Package ledger applies a payment across open transactions.
package ledger

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNonPositiveAmount = errors.New("payment amount must be positive")

type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// Open is a transaction leg with money still outstanding.
type Open struct {
	ID          uuid.UUID
	Outstanding decimal.Decimal
}

type Allocation struct {
	TransactionID uuid.UUID
	Amount        decimal.Decimal
}

// Allocate pays open items in order, each up to its outstanding amount.
// Items with nothing outstanding are skipped. The unapplied part of amount
// is returned as the remainder.
func Allocate(amount decimal.Decimal, open []Open) ([]Allocation, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, decimal.Zero, ErrNonPositiveAmount
	}

	remaining := amount
	var allocations []Allocation
	for _, item := range open {
		if !remaining.IsPositive() {
			break
		}
		if !item.Outstanding.IsPositive() {
			continue
		}
		pay := decimal.Min(remaining, item.Outstanding)
		allocations = append(allocations, Allocation{TransactionID: item.ID, Amount: pay})
		remaining = remaining.Sub(pay)
	}

	return allocations, remaining, nil
}

func StatusFor(paid, due decimal.Decimal) Status {
	switch {
	case !due.IsPositive():
		return StatusPaid
	case !paid.IsPositive():
		return StatusUnpaid
	case paid.LessThan(due):
		return StatusPartial
	default:
		return StatusPaid
	}
}

// Outstanding never goes below zero.
func Outstanding(due, paid decimal.Decimal) decimal.Decimal {
	rest := due.Sub(paid)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}
