package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
)

// Transaction is one immutable ledger entry. Amount is always a positive
// magnitude; the direction is carried by Type. Balance is the account's
// running balance immediately after this entry was applied.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	TransferRef string          `json:"transferRef,omitempty"`
	FromAccount string          `json:"fromAccount,omitempty"`
	ToAccount   string          `json:"toAccount,omitempty"`
}

// IsCredit reports whether the entry increased the balance.
func (t Transaction) IsCredit() bool {
	return t.Type == TransactionTypeDeposit || t.Type == TransactionTypeTransferIn
}

// IsTransfer reports whether the entry is either leg of a transfer.
func (t Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransferIn || t.Type == TransactionTypeTransferOut
}
