package models

import (
	"errors"
	"strings"
)

const (
	StatementFilterAll        = "all"
	StatementFilterDeposit    = "deposit"
	StatementFilterWithdrawal = "withdrawal"
	StatementFilterTransfer   = "transfer"
)

const (
	StatementFormatCSV  = "csv"
	StatementFormatPDF  = "pdf"
	StatementFormatXLSX = "xlsx"
)

type StatementRequest struct {
	AccountNumber string
	Filter        string
}

func (r StatementRequest) Validate() error {
	var errs []string

	if !IsNineDigitAccountNumber(strings.TrimSpace(r.AccountNumber)) {
		errs = append(errs, "accountNumber must be exactly 9 digits")
	}

	switch strings.ToLower(strings.TrimSpace(r.Filter)) {
	case "", StatementFilterAll, StatementFilterDeposit, StatementFilterWithdrawal, StatementFilterTransfer:
	default:
		errs = append(errs, "filter must be one of all, deposit, withdrawal, transfer")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ExportStatementRequest struct {
	AccountNumber string
	Filter        string
	Format        string
}

func (r ExportStatementRequest) Validate() error {
	if err := (StatementRequest{AccountNumber: r.AccountNumber, Filter: r.Filter}).Validate(); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(r.Format)) {
	case "", StatementFormatCSV, StatementFormatPDF, StatementFormatXLSX:
		return nil
	default:
		return errors.New("format must be one of csv, pdf, xlsx")
	}
}

type StatementResponse struct {
	AccountNumber string             `json:"accountNumber"`
	FullName      string             `json:"fullName"`
	Filter        string             `json:"filter"`
	TotalCredits  string             `json:"totalCredits"`
	TotalDebits   string             `json:"totalDebits"`
	Count         int                `json:"count"`
	Transactions  []TransactionModel `json:"transactions"`
}

// StatementExport is a rendered statement document ready to stream as an
// attachment.
type StatementExport struct {
	Filename    string
	ContentType string
	Content     []byte
}
