package handler

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/iho/finrecords/internal/adapter/http/dto"
	"github.com/iho/finrecords/internal/domain"
)

// ImportService defines the behavior needed by ImportHandler.
type ImportService interface {
	ImportPeople(ctx context.Context, file io.Reader) *domain.ImportOutcome
	ImportFinancialRecords(ctx context.Context, file io.Reader) *domain.ImportOutcome
}

// ImportHandler handles CSV upload requests.
type ImportHandler struct {
	importUC ImportService
	maxBytes int64
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importUC ImportService, maxBytes int64) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		maxBytes: maxBytes,
	}
}

// ImportPeople imports a people CSV file.
func (h *ImportHandler) ImportPeople(w http.ResponseWriter, r *http.Request) {
	file, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	outcome := h.importUC.ImportPeople(r.Context(), file)
	writeJSON(w, http.StatusOK, dto.ImportOutcomeFromDomain(outcome))
}

// ImportFinancialRecords imports a financial records CSV file.
func (h *ImportHandler) ImportFinancialRecords(w http.ResponseWriter, r *http.Request) {
	file, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	outcome := h.importUC.ImportFinancialRecords(r.Context(), file)
	writeJSON(w, http.StatusOK, dto.ImportOutcomeFromDomain(outcome))
}

// openUpload extracts the uploaded CSV from the multipart form. It writes the
// error response itself and reports success through the bool.
func (h *ImportHandler) openUpload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload", err.Error())
		return nil, false
	}

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		file.Close()
		writeError(w, http.StatusBadRequest, "unsupported file type", "only .csv files are accepted")
		return nil, false
	}

	return file, true
}
