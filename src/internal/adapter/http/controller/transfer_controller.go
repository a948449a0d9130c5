package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/commons"
	"github.com/api-sage/securebank-core/src/internal/usecase/service_interfaces"
)

type TransferController struct {
	service service_interfaces.TransferService
}

func NewTransferController(service service_interfaces.TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	transfer := http.Handler(http.HandlerFunc(c.transfer))
	if authMiddleware != nil {
		transfer = authMiddleware(transfer)
	}

	mux.Handle("/transfer-funds", transfer)
}

func (c *TransferController) transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransferFundsResponse]("method not allowed"))
		return
	}

	var req models.TransferFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferFundsResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.TransferFunds(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
