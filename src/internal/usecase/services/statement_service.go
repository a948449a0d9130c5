package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/securebank-core/src/internal/commons"
	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/logger"
	"github.com/shopspring/decimal"
)

// StatementService serves read-only projections over an account's ledger:
// the filtered transaction view plus credit/debit totals, and downloadable
// exports of that view.
type StatementService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewStatementService(accountRepo repo_interfaces.AccountRepository) *StatementService {
	return &StatementService{accountRepo: accountRepo}
}

func (s *StatementService) GetStatement(ctx context.Context, req models.StatementRequest) (commons.Response[models.StatementResponse], error) {
	logger.Info("statement service get statement request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"filter":        req.Filter,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.StatementResponse]("validation failed", err.Error()), err
	}

	account, filtered, err := s.filteredView(ctx, req.AccountNumber, req.Filter)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.StatementResponse]("Account not found"), err
		}
		logger.Error("statement service get statement failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.StatementResponse]("failed to get statement", "Unable to fetch statement right now"), err
	}

	totalCredits := decimal.Zero
	totalDebits := decimal.Zero
	for _, entry := range account.Transactions {
		if entry.IsCredit() {
			totalCredits = totalCredits.Add(entry.Amount)
		} else {
			totalDebits = totalDebits.Add(entry.Amount)
		}
	}

	transactions := make([]models.TransactionModel, 0, len(filtered))
	for _, entry := range filtered {
		transactions = append(transactions, mapTransactionToModel(entry))
	}

	response := models.StatementResponse{
		AccountNumber: account.AccountNumber,
		FullName:      account.FullName,
		Filter:        normalizeFilter(req.Filter),
		TotalCredits:  totalCredits.StringFixed(2),
		TotalDebits:   totalDebits.StringFixed(2),
		Count:         len(transactions),
		Transactions:  transactions,
	}

	return commons.SuccessResponse("statement fetched successfully", response), nil
}

func (s *StatementService) ExportStatement(ctx context.Context, req models.ExportStatementRequest) (models.StatementExport, error) {
	logger.Info("statement service export statement request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"filter":        req.Filter,
		"format":        req.Format,
	})

	if err := req.Validate(); err != nil {
		return models.StatementExport{}, err
	}

	account, filtered, err := s.filteredView(ctx, req.AccountNumber, req.Filter)
	if err != nil {
		return models.StatementExport{}, err
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = models.StatementFormatCSV
	}

	switch format {
	case models.StatementFormatCSV:
		content, err := renderCSV(filtered)
		if err != nil {
			return models.StatementExport{}, err
		}
		return models.StatementExport{
			Filename:    exportFilename(account.AccountNumber, "csv"),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	case models.StatementFormatPDF:
		content, err := renderPDF(account, filtered)
		if err != nil {
			return models.StatementExport{}, err
		}
		return models.StatementExport{
			Filename:    exportFilename(account.AccountNumber, "pdf"),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	case models.StatementFormatXLSX:
		content, err := renderXLSX(filtered)
		if err != nil {
			return models.StatementExport{}, err
		}
		return models.StatementExport{
			Filename:    exportFilename(account.AccountNumber, "xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	default:
		return models.StatementExport{}, fmt.Errorf("unsupported export format %q", format)
	}
}

func (s *StatementService) filteredView(ctx context.Context, accountNumber, filter string) (domain.Account, []domain.Transaction, error) {
	account, err := s.accountRepo.GetByAccountNumber(ctx, strings.TrimSpace(accountNumber))
	if err != nil {
		return domain.Account{}, nil, err
	}

	return account, filterTransactions(account.Transactions, filter), nil
}

// filterTransactions keeps the entries matching the statement filter. The
// transfer filter covers both transfer_in and transfer_out.
func filterTransactions(entries []domain.Transaction, filter string) []domain.Transaction {
	filter = normalizeFilter(filter)

	filtered := make([]domain.Transaction, 0, len(entries))
	for _, entry := range entries {
		switch filter {
		case models.StatementFilterAll:
			filtered = append(filtered, entry)
		case models.StatementFilterTransfer:
			if entry.IsTransfer() {
				filtered = append(filtered, entry)
			}
		default:
			if string(entry.Type) == filter {
				filtered = append(filtered, entry)
			}
		}
	}

	return filtered
}

func normalizeFilter(filter string) string {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return models.StatementFilterAll
	}
	return filter
}

func exportFilename(accountNumber, ext string) string {
	return fmt.Sprintf("account_statement_%s.%s", accountNumber, ext)
}
