package ingest

import (
	"fmt"
	"strings"
)

// Column names shared by the people and financial-record file formats.
const (
	ColFirstName            = "FirstName"
	ColSurname              = "Surname"
	ColDob                  = "Dob"
	ColAddress              = "Address"
	ColPostcode             = "Postcode"
	ColAccountType          = "AccountType"
	ColInitialAmount        = "InitialAmount"
	ColTotalPaymentAmount   = "TotalPaymentAmount"
	ColRepaymentAmount      = "RepaymentAmount"
	ColRemainingAmount      = "RemainingAmount"
	ColTransactionDate      = "TransactionDate"
	ColMinimumPaymentAmount = "MinimumPaymentAmount"
	ColInterestRate         = "InterestRate"
	ColInitialTerm          = "InitialTerm"
	ColRemainingTerm        = "RemainingTerm"
	ColStatus               = "Status"
)

// ValidatePersonRow applies the person import rules to one decoded row and
// returns the row-numbered diagnostics, one per violated rule. An empty
// result means the row may proceed to planning.
func ValidatePersonRow(row Row) []string {
	var errs []string

	if isBlank(row.Get(ColFirstName)) {
		errs = append(errs, fmt.Sprintf("Row %d: FirstName is required", row.Number))
	}

	if isBlank(row.Get(ColSurname)) {
		errs = append(errs, fmt.Sprintf("Row %d: Surname is required", row.Number))
	}

	dob := row.Get(ColDob)
	if isBlank(dob) {
		errs = append(errs, fmt.Sprintf("Row %d: Date of birth is required", row.Number))
	} else if _, ok := TryParseDate(dob); !ok {
		errs = append(errs, fmt.Sprintf("Row %d: Invalid date format for Dob", row.Number))
	}

	return errs
}

// ValidateRecordRow applies the financial-record import rules to one decoded
// row. Optional numeric and term fields are not checked here; they normalize
// to absent later.
func ValidateRecordRow(row Row) []string {
	var errs []string

	if isBlank(row.Get(ColFirstName)) {
		errs = append(errs, fmt.Sprintf("Row %d: FirstName is required", row.Number))
	}

	if isBlank(row.Get(ColSurname)) {
		errs = append(errs, fmt.Sprintf("Row %d: Surname is required", row.Number))
	}

	if isBlank(row.Get(ColAccountType)) {
		errs = append(errs, fmt.Sprintf("Row %d: AccountType is required", row.Number))
	}

	if _, err := RequiredDecimal(row.Get(ColInitialAmount)); err != nil {
		errs = append(errs, fmt.Sprintf("Row %d: Valid InitialAmount is required", row.Number))
	}

	if _, ok := TryParseDate(row.Get(ColTransactionDate)); !ok {
		errs = append(errs, fmt.Sprintf("Row %d: Valid TransactionDate is required", row.Number))
	}

	return errs
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
