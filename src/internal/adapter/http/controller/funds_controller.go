package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/commons"
	"github.com/api-sage/securebank-core/src/internal/usecase/service_interfaces"
)

type FundsController struct {
	service service_interfaces.LedgerService
}

func NewFundsController(service service_interfaces.LedgerService) *FundsController {
	return &FundsController{service: service}
}

func (c *FundsController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	deposit := http.Handler(http.HandlerFunc(c.deposit))
	withdraw := http.Handler(http.HandlerFunc(c.withdraw))

	if authMiddleware != nil {
		deposit = authMiddleware(deposit)
		withdraw = authMiddleware(withdraw)
	}

	mux.Handle("/deposit-funds", deposit)
	mux.Handle("/withdraw-funds", withdraw)
}

func (c *FundsController) deposit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.DepositFundsResponse]("method not allowed"))
		return
	}

	var req models.DepositFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.DepositFundsResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.DepositFunds(r.Context(), req)
	if err != nil {
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *FundsController) withdraw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.WithdrawFundsResponse]("method not allowed"))
		return
	}

	var req models.WithdrawFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.WithdrawFundsResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.WithdrawFunds(r.Context(), req)
	if err != nil {
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
