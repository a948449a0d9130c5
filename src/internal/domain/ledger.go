package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DescriptionInitialDeposit = "Initial Deposit"
	DescriptionCashDeposit    = "Cash Deposit"
	DescriptionCashWithdrawal = "Cash Withdrawal"
)

// TransferResult carries both legs of a transfer. The sender's head entry is
// the transfer_out leg and the recipient's head entry is the transfer_in leg;
// both share TransferRef.
type TransferResult struct {
	Sender      Account
	Recipient   Account
	TransferRef string
}

// ApplyDeposit produces a copy of account with the deposit applied: balance
// increased and a deposit entry prepended. The input account is not mutated.
func ApplyDeposit(account Account, amount decimal.Decimal, description string) (Account, error) {
	if !amount.IsPositive() {
		return Account{}, ErrInvalidAmount
	}

	if description == "" {
		description = DescriptionCashDeposit
	}

	newBalance := account.Balance.Add(amount)
	entry := Transaction{
		ID:          uuid.NewString(),
		Type:        TransactionTypeDeposit,
		Amount:      amount,
		Date:        time.Now(),
		Description: description,
		Balance:     newBalance,
	}

	return prependEntry(account, newBalance, entry), nil
}

// ApplyWithdrawal produces a copy of account with the withdrawal applied.
// The balance can never go negative: any amount above the current balance
// fails with ErrInsufficientFunds.
func ApplyWithdrawal(account Account, amount decimal.Decimal, description string) (Account, error) {
	if !amount.IsPositive() {
		return Account{}, ErrInvalidAmount
	}
	if amount.GreaterThan(account.Balance) {
		return Account{}, ErrInsufficientFunds
	}

	if description == "" {
		description = DescriptionCashWithdrawal
	}

	newBalance := account.Balance.Sub(amount)
	entry := Transaction{
		ID:          uuid.NewString(),
		Type:        TransactionTypeWithdrawal,
		Amount:      amount,
		Date:        time.Now(),
		Description: description,
		Balance:     newBalance,
	}

	return prependEntry(account, newBalance, entry), nil
}

// BuildTransfer computes both sides of a transfer as one logical operation.
// Funds sufficiency is checked against the sender only. Callers must persist
// both returned accounts together; the repository ApplyTransfer contract
// posts them in a single storage transaction.
func BuildTransfer(sender Account, recipient Account, amount decimal.Decimal, description string) (TransferResult, error) {
	if !amount.IsPositive() {
		return TransferResult{}, ErrInvalidAmount
	}
	if amount.GreaterThan(sender.Balance) {
		return TransferResult{}, ErrInsufficientFunds
	}

	ref := uuid.NewString()
	now := time.Now()

	outDescription := description
	if outDescription == "" {
		outDescription = fmt.Sprintf("Transfer to %s", recipient.FullName)
	}
	inDescription := description
	if inDescription == "" {
		inDescription = fmt.Sprintf("Transfer from %s", sender.FullName)
	}

	senderBalance := sender.Balance.Sub(amount)
	outEntry := Transaction{
		ID:          uuid.NewString(),
		Type:        TransactionTypeTransferOut,
		Amount:      amount,
		Date:        now,
		Description: outDescription,
		Balance:     senderBalance,
		TransferRef: ref,
		ToAccount:   recipient.AccountNumber,
	}

	recipientBalance := recipient.Balance.Add(amount)
	inEntry := Transaction{
		ID:          uuid.NewString(),
		Type:        TransactionTypeTransferIn,
		Amount:      amount,
		Date:        now,
		Description: inDescription,
		Balance:     recipientBalance,
		TransferRef: ref,
		FromAccount: sender.AccountNumber,
	}

	return TransferResult{
		Sender:      prependEntry(sender, senderBalance, outEntry),
		Recipient:   prependEntry(recipient, recipientBalance, inEntry),
		TransferRef: ref,
	}, nil
}

func prependEntry(account Account, newBalance decimal.Decimal, entry Transaction) Account {
	entries := make([]Transaction, 0, len(account.Transactions)+1)
	entries = append(entries, entry)
	entries = append(entries, account.Transactions...)

	account.Balance = newBalance
	account.Transactions = entries
	account.UpdatedAt = entry.Date
	return account
}
