package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/finrecords/internal/domain"
)

// FinancialRecordRepository implements usecase.FinancialRecordRepository.
type FinancialRecordRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewFinancialRecordRepository creates a new FinancialRecordRepository.
func NewFinancialRecordRepository(pool *pgxpool.Pool) *FinancialRecordRepository {
	return &FinancialRecordRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// CreateBatch inserts all records in a single bulk write using COPY.
func (r *FinancialRecordRepository) CreateBatch(ctx context.Context, records []*domain.FinancialRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{
			rec.PersonID,
			rec.AccountType,
			decimalToNumeric(rec.InitialAmount),
			optionalDecimalToNumeric(rec.TotalPaymentAmount),
			optionalDecimalToNumeric(rec.RepaymentAmount),
			optionalDecimalToNumeric(rec.RemainingAmount),
			optionalDecimalToNumeric(rec.MinimumPaymentAmount),
			optionalDecimalToNumeric(rec.InterestRate),
			optionalIntToPgInt4(rec.InitialTerm),
			optionalIntToPgInt4(rec.RemainingTerm),
			timeToPgDate(rec.TransactionDate),
			rec.Status,
			timeToPgTimestamptz(rec.CreatedAt),
		})
	}

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.CopyFrom(ctx,
			pgx.Identifier{"financial_records"},
			[]string{
				"person_id",
				"account_type",
				"initial_amount",
				"total_payment_amount",
				"repayment_amount",
				"remaining_amount",
				"minimum_payment_amount",
				"interest_rate",
				"initial_term",
				"remaining_term",
				"transaction_date",
				"status",
				"created_at",
			},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

// ListOpenByPerson returns the person's open records with a transaction date
// not after asOf, newest first. Openness is evaluated in the query with the
// same rule the domain uses: status is not Closed and a positive remaining
// amount is present.
func (r *FinancialRecordRepository) ListOpenByPerson(ctx context.Context, firstName, surname string, asOf time.Time) ([]*domain.FinancialRecord, error) {
	query := `
		SELECT fr.id, fr.person_id, fr.account_type, fr.initial_amount,
		       fr.total_payment_amount, fr.repayment_amount, fr.remaining_amount,
		       fr.minimum_payment_amount, fr.interest_rate,
		       fr.initial_term, fr.remaining_term,
		       fr.transaction_date, fr.status, fr.created_at
		FROM financial_records fr
		JOIN people p ON p.id = fr.person_id
		WHERE p.first_name = $1
		  AND p.surname = $2
		  AND fr.transaction_date <= $3
		  AND fr.status <> $4
		  AND fr.remaining_amount > 0
		ORDER BY fr.transaction_date DESC, fr.id DESC
	`

	rows, err := r.pool.Query(ctx, query, firstName, surname, timeToPgDate(asOf), domain.StatusClosed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.FinancialRecord
	for rows.Next() {
		var (
			rec           domain.FinancialRecord
			initialAmount pgtype.Numeric
			totalPayment  pgtype.Numeric
			repayment     pgtype.Numeric
			remaining     pgtype.Numeric
			minPayment    pgtype.Numeric
			interestRate  pgtype.Numeric
			initialTerm   pgtype.Int4
			remainingTerm pgtype.Int4
			txDate        pgtype.Date
			createdAt     pgtype.Timestamptz
		)

		err := rows.Scan(
			&rec.ID,
			&rec.PersonID,
			&rec.AccountType,
			&initialAmount,
			&totalPayment,
			&repayment,
			&remaining,
			&minPayment,
			&interestRate,
			&initialTerm,
			&remainingTerm,
			&txDate,
			&rec.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		rec.InitialAmount = numericToDecimal(initialAmount)
		rec.TotalPaymentAmount = numericToOptionalDecimal(totalPayment)
		rec.RepaymentAmount = numericToOptionalDecimal(repayment)
		rec.RemainingAmount = numericToOptionalDecimal(remaining)
		rec.MinimumPaymentAmount = numericToOptionalDecimal(minPayment)
		rec.InterestRate = numericToOptionalDecimal(interestRate)
		rec.InitialTerm = pgInt4ToOptionalInt(initialTerm)
		rec.RemainingTerm = pgInt4ToOptionalInt(remainingTerm)
		rec.TransactionDate = txDate.Time
		rec.CreatedAt = createdAt.Time

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func optionalDecimalToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}

	return decimalToNumeric(*d)
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func numericToOptionalDecimal(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}

	d := numericToDecimal(n)
	return &d
}

func optionalIntToPgInt4(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}

	return pgtype.Int4{Int32: *v, Valid: true}
}

func pgInt4ToOptionalInt(v pgtype.Int4) *int32 {
	if !v.Valid {
		return nil
	}

	n := v.Int32
	return &n
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
