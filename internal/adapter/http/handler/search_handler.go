package handler

import (
	"context"
	"net/http"

	"github.com/iho/finrecords/internal/adapter/http/dto"
	"github.com/iho/finrecords/internal/domain"
)

// SearchService defines the behavior needed by SearchHandler.
type SearchService interface {
	OpenRecordsByName(ctx context.Context, name string) ([]*domain.FinancialRecord, error)
}

// SearchHandler handles record search requests.
type SearchHandler struct {
	searchUC SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchUC SearchService) *SearchHandler {
	return &SearchHandler{searchUC: searchUC}
}

// OpenRecords returns the open financial records for a person named by the
// "name" query parameter.
func (h *SearchHandler) OpenRecords(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing name parameter", "expected ?name=First Last")
		return
	}

	records, err := h.searchUC.OpenRecordsByName(r.Context(), name)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to search records", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.FinancialRecordsFromDomain(records))
}
