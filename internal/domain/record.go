package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusClosed marks a financial record as terminal by convention.
const StatusClosed = "Closed"

// StatusDefault is assigned when an imported row carries no status.
const StatusDefault = "OK"

// FinancialRecord represents a single financial product owned by a person.
// Optional numeric fields are nil when the source row left them blank or
// unparsable.
type FinancialRecord struct {
	ID                   int64
	PersonID             int64
	AccountType          string
	InitialAmount        decimal.Decimal
	TotalPaymentAmount   *decimal.Decimal
	RepaymentAmount      *decimal.Decimal
	RemainingAmount      *decimal.Decimal
	MinimumPaymentAmount *decimal.Decimal
	InterestRate         *decimal.Decimal
	InitialTerm          *int32
	RemainingTerm        *int32
	TransactionDate      time.Time
	CreatedAt            time.Time
	Status               string
}

// IsOpen reports whether the record is still active: not closed and with a
// positive remaining amount. Computed, never persisted.
func (r *FinancialRecord) IsOpen() bool {
	return r.Status != StatusClosed &&
		r.RemainingAmount != nil &&
		r.RemainingAmount.GreaterThan(decimal.Zero)
}
