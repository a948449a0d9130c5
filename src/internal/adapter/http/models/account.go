package models

import (
	"errors"
	"strings"
)

type LoginRequest struct {
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransactionModel struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Balance     string `json:"balance"`
	TransferRef string `json:"transferRef,omitempty"`
	FromAccount string `json:"fromAccount,omitempty"`
	ToAccount   string `json:"toAccount,omitempty"`
}

type AccountResponse struct {
	AccountNumber string             `json:"accountNumber"`
	FullName      string             `json:"fullName"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	Balance       string             `json:"balance"`
	Transactions  []TransactionModel `json:"transactions"`
	CreatedAt     string             `json:"createdAt"`
	UpdatedAt     string             `json:"updatedAt"`
}

// AccountSummary is the projection served to the transfer recipient picker.
type AccountSummary struct {
	AccountNumber string `json:"accountNumber"`
	FullName      string `json:"fullName"`
}

func IsNineDigitAccountNumber(accountNumber string) bool {
	if len(accountNumber) != 9 {
		return false
	}

	for _, ch := range accountNumber {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return true
}
