package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferFundsRequest struct {
	FromAccount string `json:"fromAccount"`
	ToAccount   string `json:"toAccount"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

func (r TransferFundsRequest) Validate() error {
	var errs []string

	fromAccount := strings.TrimSpace(r.FromAccount)
	toAccount := strings.TrimSpace(r.ToAccount)

	if !IsNineDigitAccountNumber(fromAccount) {
		errs = append(errs, "fromAccount must be exactly 9 digits")
	}
	if !IsNineDigitAccountNumber(toAccount) {
		errs = append(errs, "toAccount must be exactly 9 digits")
	}
	if fromAccount != "" && fromAccount == toAccount {
		errs = append(errs, "fromAccount and toAccount cannot be the same")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else {
		parsed, err := decimal.NewFromString(amount)
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

type TransferFundsResponse struct {
	TransferRef   string           `json:"transferRef"`
	FromAccount   string           `json:"fromAccount"`
	ToAccount     string           `json:"toAccount"`
	Amount        string           `json:"amount"`
	SenderBalance string           `json:"senderBalance"`
	Transaction   TransactionModel `json:"transaction"`
}
