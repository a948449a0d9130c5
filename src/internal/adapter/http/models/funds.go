package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type DepositFundsRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r DepositFundsRequest) Validate() error {
	return validateFundsRequest(r.AccountNumber, r.Amount)
}

type DepositFundsResponse struct {
	AccountNumber   string           `json:"accountNumber"`
	DepositedAmount string           `json:"depositedAmount"`
	Balance         string           `json:"balance"`
	Transaction     TransactionModel `json:"transaction"`
}

type WithdrawFundsRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r WithdrawFundsRequest) Validate() error {
	return validateFundsRequest(r.AccountNumber, r.Amount)
}

type WithdrawFundsResponse struct {
	AccountNumber   string           `json:"accountNumber"`
	WithdrawnAmount string           `json:"withdrawnAmount"`
	Balance         string           `json:"balance"`
	Transaction     TransactionModel `json:"transaction"`
}

func validateFundsRequest(accountNumber, amount string) error {
	var errs []string

	if !IsNineDigitAccountNumber(strings.TrimSpace(accountNumber)) {
		errs = append(errs, "accountNumber must be exactly 9 digits")
	}

	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		errs = append(errs, "amount is required")
	} else {
		parsed, err := decimal.NewFromString(trimmed)
		if err != nil {
			errs = append(errs, "amount must be numeric")
		} else if parsed.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, "amount must be greater than zero")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}
