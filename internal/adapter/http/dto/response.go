package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finrecords/internal/domain"
)

// ImportOutcomeResponse reports the result of a file import.
type ImportOutcomeResponse struct {
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}

// ImportOutcomeFromDomain converts an import outcome to a response.
func ImportOutcomeFromDomain(o *domain.ImportOutcome) *ImportOutcomeResponse {
	errs := o.Errors
	if errs == nil {
		errs = []string{}
	}

	return &ImportOutcomeResponse{
		Successful: o.Successful,
		Failed:     o.Failed,
		Errors:     errs,
	}
}

// FinancialRecordResponse represents a financial record in API responses.
type FinancialRecordResponse struct {
	ID                   int64            `json:"id"`
	PersonID             int64            `json:"person_id"`
	AccountType          string           `json:"account_type"`
	InitialAmount        decimal.Decimal  `json:"initial_amount"`
	TotalPaymentAmount   *decimal.Decimal `json:"total_payment_amount,omitempty"`
	RepaymentAmount      *decimal.Decimal `json:"repayment_amount,omitempty"`
	RemainingAmount      *decimal.Decimal `json:"remaining_amount,omitempty"`
	MinimumPaymentAmount *decimal.Decimal `json:"minimum_payment_amount,omitempty"`
	InterestRate         *decimal.Decimal `json:"interest_rate,omitempty"`
	InitialTerm          *int32           `json:"initial_term,omitempty"`
	RemainingTerm        *int32           `json:"remaining_term,omitempty"`
	TransactionDate      time.Time        `json:"transaction_date"`
	Status               string           `json:"status"`
	IsOpen               bool             `json:"is_open"`
}

// FinancialRecordFromDomain converts a domain record to a response.
func FinancialRecordFromDomain(r *domain.FinancialRecord) *FinancialRecordResponse {
	return &FinancialRecordResponse{
		ID:                   r.ID,
		PersonID:             r.PersonID,
		AccountType:          r.AccountType,
		InitialAmount:        r.InitialAmount,
		TotalPaymentAmount:   r.TotalPaymentAmount,
		RepaymentAmount:      r.RepaymentAmount,
		RemainingAmount:      r.RemainingAmount,
		MinimumPaymentAmount: r.MinimumPaymentAmount,
		InterestRate:         r.InterestRate,
		InitialTerm:          r.InitialTerm,
		RemainingTerm:        r.RemainingTerm,
		TransactionDate:      r.TransactionDate,
		Status:               r.Status,
		IsOpen:               r.IsOpen(),
	}
}

// FinancialRecordsFromDomain converts domain records to responses.
func FinancialRecordsFromDomain(records []*domain.FinancialRecord) []*FinancialRecordResponse {
	result := make([]*FinancialRecordResponse, len(records))
	for i, r := range records {
		result[i] = FinancialRecordFromDomain(r)
	}
	return result
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// LoginResponse carries the issued token and its user.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
