package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const minimumInitialDeposit = 100

type RegisterAccountRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	InitialDeposit  string `json:"initialDeposit"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r RegisterAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	} else if !strings.Contains(r.Email, "@") {
		errs = append(errs, "email must be a valid email address")
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}

	if r.Password == "" {
		errs = append(errs, "password is required")
	} else if len(r.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters long")
	}
	if r.ConfirmPassword == "" {
		errs = append(errs, "confirmPassword is required")
	} else if r.Password != "" && r.Password != r.ConfirmPassword {
		errs = append(errs, "passwords do not match")
	}

	deposit := strings.TrimSpace(r.InitialDeposit)
	if deposit == "" {
		errs = append(errs, "initialDeposit is required")
	} else {
		parsed, err := decimal.NewFromString(deposit)
		if err != nil {
			errs = append(errs, "initialDeposit must be numeric")
		} else if parsed.LessThan(decimal.NewFromInt(minimumInitialDeposit)) {
			errs = append(errs, "initialDeposit must be at least 100")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RegisterAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	FullName      string `json:"fullName"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"createdAt"`
}
