package services

import (
	"time"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/domain"
)

// statementDateLayout is the human-readable timestamp used on statements and
// exports.
const statementDateLayout = "02 Jan 2006 15:04:05"

func mapTransactionToModel(entry domain.Transaction) models.TransactionModel {
	return models.TransactionModel{
		ID:          entry.ID,
		Type:        string(entry.Type),
		Amount:      entry.Amount.StringFixed(2),
		Date:        entry.Date.Format(statementDateLayout),
		Description: entry.Description,
		Balance:     entry.Balance.StringFixed(2),
		TransferRef: entry.TransferRef,
		FromAccount: entry.FromAccount,
		ToAccount:   entry.ToAccount,
	}
}

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	transactions := make([]models.TransactionModel, 0, len(account.Transactions))
	for _, entry := range account.Transactions {
		transactions = append(transactions, mapTransactionToModel(entry))
	}

	return models.AccountResponse{
		AccountNumber: account.AccountNumber,
		FullName:      account.FullName,
		Email:         account.Email,
		Phone:         account.Phone,
		Address:       account.Address,
		Balance:       account.Balance.StringFixed(2),
		Transactions:  transactions,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}
}
