package domain

// ImportOutcome is the aggregate result of one import batch: row counts plus
// the ordered, row-numbered error list. It is ephemeral and never persisted.
//
// A file-level failure (undecodable input, failed bulk write) discards the
// row tallies: the outcome carries zero counts and a single message.
type ImportOutcome struct {
	Successful int
	Failed     int
	Errors     []string
}

// AddRowErrors marks one row as failed and appends its diagnostics.
func (o *ImportOutcome) AddRowErrors(errs ...string) {
	o.Failed++
	o.Errors = append(o.Errors, errs...)
}

// FileFailure returns an outcome for a batch that failed as a whole.
func FileFailure(message string) *ImportOutcome {
	return &ImportOutcome{Errors: []string{message}}
}
