package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/commons"
	"github.com/api-sage/securebank-core/src/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register := http.Handler(http.HandlerFunc(c.register))
	login := http.Handler(http.HandlerFunc(c.login))
	getAccount := http.Handler(http.HandlerFunc(c.getAccount))
	listAccounts := http.Handler(http.HandlerFunc(c.listAccounts))

	if authMiddleware != nil {
		register = authMiddleware(register)
		login = authMiddleware(login)
		getAccount = authMiddleware(getAccount)
		listAccounts = authMiddleware(listAccounts)
	}

	mux.Handle("/register-account", register)
	mux.Handle("/login", login)
	mux.Handle("/get-account", getAccount)
	mux.Handle("/get-accounts", listAccounts)
}

func (c *AccountController) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.RegisterAccountResponse]("method not allowed"))
		return
	}

	var req models.RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.RegisterAccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Register(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *AccountController) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountResponse]("method not allowed"))
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Login(r.Context(), req)
	if err != nil {
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountResponse]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.service.GetAccount(r.Context(), r.URL.Query().Get("accountNumber"))
	if err != nil {
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[[]models.AccountSummary]("method not allowed"))
		return
	}
	logRequest(r, nil)

	response, err := c.service.ListAccounts(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, httpStatus(response.Message, err), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
