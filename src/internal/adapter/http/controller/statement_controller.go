package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/commons"
	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/usecase/service_interfaces"
)

type StatementController struct {
	service service_interfaces.StatementService
}

func NewStatementController(service service_interfaces.StatementService) *StatementController {
	return &StatementController{service: service}
}

func (c *StatementController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	statement := http.Handler(http.HandlerFunc(c.getStatement))
	export := http.Handler(http.HandlerFunc(c.exportStatement))

	if authMiddleware != nil {
		statement = authMiddleware(statement)
		export = authMiddleware(export)
	}

	mux.Handle("/get-statement", statement)
	mux.Handle("/export-statement", export)
}

func (c *StatementController) getStatement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.StatementResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	req := models.StatementRequest{
		AccountNumber: r.URL.Query().Get("accountNumber"),
		Filter:        r.URL.Query().Get("filter"),
	}

	response, err := c.service.GetStatement(r.Context(), req)
	if err != nil {
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// exportStatement streams the rendered statement as a file attachment rather
// than a JSON envelope.
func (c *StatementController) exportStatement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.StatementExport]("method not allowed"))
		return
	}
	logRequest(r, nil)

	req := models.ExportStatementRequest{
		AccountNumber: r.URL.Query().Get("accountNumber"),
		Filter:        r.URL.Query().Get("filter"),
		Format:        r.URL.Query().Get("format"),
	}

	export, err := c.service.ExportStatement(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, commons.ErrorResponse[models.StatementExport]("Account not found"))
			return
		}
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.StatementExport]("failed to export statement", err.Error()))
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}
