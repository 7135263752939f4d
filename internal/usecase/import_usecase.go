package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/finrecords/internal/domain"
	"github.com/iho/finrecords/internal/infrastructure/metrics"
	"github.com/iho/finrecords/internal/ingest"
)

// ImportUseCase ingests delimited people and financial-record files. Every
// row flows through validation and planning independently; staged candidates
// are written in a single bulk insert per entity type once the whole batch is
// classified. Row-level failures never abort the batch, while an undecodable
// file or a failed bulk write discards the row tallies and reports a single
// file-level message in the outcome.
type ImportUseCase struct {
	people  PersonRepository
	records FinancialRecordRepository
	logger  zerolog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewImportUseCase creates a new ImportUseCase. Metrics are optional; pass
// nil to skip instrumentation.
func NewImportUseCase(people PersonRepository, records FinancialRecordRepository, logger zerolog.Logger, m *metrics.Metrics) *ImportUseCase {
	return &ImportUseCase{
		people:  people,
		records: records,
		logger:  logger,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// observeImport records per-batch instrumentation for one entity type.
func (uc *ImportUseCase) observeImport(entity string, start time.Time, outcome *domain.ImportOutcome, staged int) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.ImportFiles.WithLabelValues(entity, "processed").Inc()
	uc.metrics.ImportRows.WithLabelValues(entity, "successful").Add(float64(outcome.Successful))
	uc.metrics.ImportRows.WithLabelValues(entity, "failed").Add(float64(outcome.Failed))
	uc.metrics.ImportBatchSize.WithLabelValues(entity).Observe(float64(staged))
	uc.metrics.ImportDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
}

// countFileError records a file-level import failure for one entity type.
func (uc *ImportUseCase) countFileError(entity string) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.ImportFileErrors.WithLabelValues(entity).Inc()
	uc.metrics.ImportFiles.WithLabelValues(entity, "failed").Inc()
}

// ImportPeople processes one people file and returns the batch outcome. The
// outcome is the whole contract: file-level failures are reported inside it,
// never as a separate error.
func (uc *ImportUseCase) ImportPeople(ctx context.Context, input io.Reader) *domain.ImportOutcome {
	start := time.Now()

	rows, err := ingest.DecodeAll(input)
	if err != nil {
		uc.logger.Error().Err(err).Msg("people import failed to decode")
		uc.countFileError("people")
		return domain.FileFailure(fmt.Sprintf("File processing failed: %v", err))
	}

	outcome := &domain.ImportOutcome{}
	staged := make([]*domain.Person, 0, len(rows))

	for _, row := range rows {
		if errs := ingest.ValidatePersonRow(row); len(errs) > 0 {
			outcome.AddRowErrors(errs...)
			continue
		}

		person, stage, err := uc.planPerson(ctx, row)
		if err != nil {
			outcome.AddRowErrors(fmt.Sprintf("Row %d: Unexpected error - %v", row.Number, err))
			uc.logger.Error().Err(err).Int("row", row.Number).Msg("person row failed")
			continue
		}

		if stage {
			staged = append(staged, person)
		}
		outcome.Successful++
	}

	if len(staged) > 0 {
		if err := uc.people.CreateBatch(ctx, staged); err != nil {
			uc.logger.Error().Err(err).Int("staged", len(staged)).Msg("people bulk insert failed")
			uc.countFileError("people")
			return domain.FileFailure(fmt.Sprintf("File processing failed: %v", err))
		}
	}

	uc.observeImport("people", start, outcome, len(staged))
	uc.logger.Info().
		Int("successful", outcome.Successful).
		Int("failed", outcome.Failed).
		Int("inserted", len(staged)).
		Msg("people import completed")

	return outcome
}

// planPerson builds a candidate person from a validated row and decides
// insert-or-skip. Deduplication consults only already-persisted people:
// identical rows within the same batch are not cross-checked against each
// other, so an unseen key appearing twice in one file is staged twice.
func (uc *ImportUseCase) planPerson(ctx context.Context, row ingest.Row) (*domain.Person, bool, error) {
	dob, err := ingest.ParseDate(row.Get(ingest.ColDob))
	if err != nil {
		return nil, false, err
	}

	person := &domain.Person{
		FirstName:   strings.TrimSpace(row.Get(ingest.ColFirstName)),
		Surname:     strings.TrimSpace(row.Get(ingest.ColSurname)),
		DateOfBirth: dob,
		Address:     strings.TrimSpace(row.Get(ingest.ColAddress)),
		Postcode:    strings.TrimSpace(row.Get(ingest.ColPostcode)),
	}

	exists, err := uc.people.ExistsByNaturalKey(ctx, person.FirstName, person.Surname, person.DateOfBirth)
	if err != nil {
		return nil, false, err
	}

	// An already-persisted match is a successful no-op row: the row was
	// valid, so it counts as successful even though nothing is inserted.
	return person, !exists, nil
}

// ImportFinancialRecords processes one financial-record file. Each row is
// matched to an already-persisted person by natural key; rows without a match
// fail with a row-level diagnostic.
func (uc *ImportUseCase) ImportFinancialRecords(ctx context.Context, input io.Reader) *domain.ImportOutcome {
	start := time.Now()

	rows, err := ingest.DecodeAll(input)
	if err != nil {
		uc.logger.Error().Err(err).Msg("financial record import failed to decode")
		uc.countFileError("financial_records")
		return domain.FileFailure(fmt.Sprintf("File processing failed: %v", err))
	}

	outcome := &domain.ImportOutcome{}
	staged := make([]*domain.FinancialRecord, 0, len(rows))

	for _, row := range rows {
		if errs := ingest.ValidateRecordRow(row); len(errs) > 0 {
			outcome.AddRowErrors(errs...)
			continue
		}

		owner, err := uc.resolveOwner(ctx, row)
		if err != nil {
			outcome.AddRowErrors(fmt.Sprintf("Row %d: Unexpected error - %v", row.Number, err))
			uc.logger.Error().Err(err).Int("row", row.Number).Msg("financial record row failed")
			continue
		}
		if owner == nil {
			outcome.AddRowErrors(fmt.Sprintf("Row %d: No matching person found for %s %s",
				row.Number, row.Get(ingest.ColFirstName), row.Get(ingest.ColSurname)))
			continue
		}

		record, err := uc.buildRecord(owner.ID, row)
		if err != nil {
			// Validation already proved the required fields parseable, so
			// reaching this path means something genuinely unexpected.
			outcome.AddRowErrors(fmt.Sprintf("Row %d: Unexpected error - %v", row.Number, err))
			uc.logger.Error().Err(err).Int("row", row.Number).Msg("financial record row failed")
			continue
		}

		staged = append(staged, record)
		outcome.Successful++
	}

	if len(staged) > 0 {
		if err := uc.records.CreateBatch(ctx, staged); err != nil {
			uc.logger.Error().Err(err).Int("staged", len(staged)).Msg("financial record bulk insert failed")
			uc.countFileError("financial_records")
			return domain.FileFailure(fmt.Sprintf("File processing failed: %v", err))
		}
	}

	uc.observeImport("financial_records", start, outcome, len(staged))
	uc.logger.Info().
		Int("successful", outcome.Successful).
		Int("failed", outcome.Failed).
		Msg("financial record import completed")

	return outcome
}

// resolveOwner resolves the owning person for a financial-record row via the
// natural key. A blank or unparsable Dob cannot match anyone, so it resolves
// to no owner rather than an error.
func (uc *ImportUseCase) resolveOwner(ctx context.Context, row ingest.Row) (*domain.Person, error) {
	dob, ok := ingest.TryParseDate(row.Get(ingest.ColDob))
	if !ok {
		return nil, nil
	}

	return uc.people.FindByNaturalKey(ctx,
		strings.TrimSpace(row.Get(ingest.ColFirstName)),
		strings.TrimSpace(row.Get(ingest.ColSurname)),
		dob,
	)
}

func (uc *ImportUseCase) buildRecord(personID int64, row ingest.Row) (*domain.FinancialRecord, error) {
	initial, err := ingest.RequiredDecimal(row.Get(ingest.ColInitialAmount))
	if err != nil {
		return nil, fmt.Errorf("parse InitialAmount: %w", err)
	}

	txDate, err := ingest.ParseDate(row.Get(ingest.ColTransactionDate))
	if err != nil {
		return nil, fmt.Errorf("parse TransactionDate: %w", err)
	}

	status := strings.TrimSpace(row.Get(ingest.ColStatus))
	if status == "" {
		status = domain.StatusDefault
	}

	return &domain.FinancialRecord{
		PersonID:             personID,
		AccountType:          strings.TrimSpace(row.Get(ingest.ColAccountType)),
		InitialAmount:        initial,
		TotalPaymentAmount:   ingest.OptionalDecimal(row.Get(ingest.ColTotalPaymentAmount)),
		RepaymentAmount:      ingest.OptionalDecimal(row.Get(ingest.ColRepaymentAmount)),
		RemainingAmount:      ingest.OptionalDecimal(row.Get(ingest.ColRemainingAmount)),
		MinimumPaymentAmount: ingest.OptionalDecimal(row.Get(ingest.ColMinimumPaymentAmount)),
		InterestRate:         ingest.OptionalDecimal(row.Get(ingest.ColInterestRate)),
		InitialTerm:          ingest.OptionalInt(row.Get(ingest.ColInitialTerm)),
		RemainingTerm:        ingest.OptionalInt(row.Get(ingest.ColRemainingTerm)),
		TransactionDate:      txDate,
		CreatedAt:            uc.now(),
		Status:               status,
	}, nil
}
