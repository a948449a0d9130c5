package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/logger"
)

// AccountRepository stores accounts and their ledger entries in postgres.
// Ledger entries are append-only; entries already recorded are skipped on
// conflict so replaying a snapshot never duplicates history.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"accountNumber": account.AccountNumber,
		"fullName":      account.FullName,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Account{}, fmt.Errorf("begin create account transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertAccount = `
INSERT INTO accounts (account_number, full_name, email, phone, address, password_hash, balance)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at`

	if err = tx.QueryRowContext(
		ctx,
		insertAccount,
		account.AccountNumber,
		account.FullName,
		account.Email,
		account.Phone,
		account.Address,
		account.PasswordHash,
		account.Balance,
	).Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		logger.Error("account repository create failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	for i := len(account.Transactions) - 1; i >= 0; i-- {
		if err = insertEntry(ctx, tx, account.AccountNumber, account.Transactions[i]); err != nil {
			return domain.Account{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Account{}, fmt.Errorf("commit create account transaction: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	const query = `
SELECT account_number, full_name, email, phone, address, password_hash, balance, created_at, updated_at
FROM accounts
WHERE account_number = $1`

	var account domain.Account
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(
		&account.AccountNumber,
		&account.FullName,
		&account.Email,
		&account.Phone,
		&account.Address,
		&account.PasswordHash,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrRecordNotFound
		}
		return domain.Account{}, fmt.Errorf("get account %s: %w", accountNumber, err)
	}

	entries, err := r.entriesFor(ctx, accountNumber)
	if err != nil {
		return domain.Account{}, err
	}
	account.Transactions = entries

	return account, nil
}

func (r *AccountRepository) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM accounts WHERE account_number = $1`, accountNumber).Scan(&count); err != nil {
		return false, fmt.Errorf("check account %s exists: %w", accountNumber, err)
	}

	return count > 0, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	const query = `
SELECT account_number, full_name, email, phone, address, password_hash, balance, created_at, updated_at
FROM accounts
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.AccountNumber,
			&account.FullName,
			&account.Email,
			&account.Phone,
			&account.Address,
			&account.PasswordHash,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	for i := range accounts {
		entries, err := r.entriesFor(ctx, accounts[i].AccountNumber)
		if err != nil {
			return nil, err
		}
		accounts[i].Transactions = entries
	}

	return accounts, nil
}

func (r *AccountRepository) Update(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository update", logger.Fields{
		"accountNumber": account.AccountNumber,
		"balance":       account.Balance,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Account{}, fmt.Errorf("begin update account transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = updateBalance(ctx, tx, account); err != nil {
		return domain.Account{}, err
	}
	if head, ok := account.HeadTransaction(); ok {
		if err = insertEntry(ctx, tx, account.AccountNumber, head); err != nil {
			return domain.Account{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Account{}, fmt.Errorf("commit update account transaction: %w", err)
	}

	return account, nil
}

// ApplyTransfer posts both sides of a transfer in one database transaction:
// either both accounts are updated or neither is.
func (r *AccountRepository) ApplyTransfer(ctx context.Context, sender domain.Account, recipient domain.Account) error {
	logger.Info("account repository apply transfer", logger.Fields{
		"senderAccountNumber":    sender.AccountNumber,
		"recipientAccountNumber": recipient.AccountNumber,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transfer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = updateBalance(ctx, tx, sender); err != nil {
		return err
	}
	if head, ok := sender.HeadTransaction(); ok {
		if err = insertEntry(ctx, tx, sender.AccountNumber, head); err != nil {
			return err
		}
	}

	if err = updateBalance(ctx, tx, recipient); err != nil {
		return err
	}
	if head, ok := recipient.HeadTransaction(); ok {
		if err = insertEntry(ctx, tx, recipient.AccountNumber, head); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.Error("account repository commit transfer failed", err, nil)
		return fmt.Errorf("commit transfer transaction: %w", err)
	}

	return nil
}

func (r *AccountRepository) entriesFor(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	const query = `
SELECT id, type, amount, balance, description, transfer_ref, from_account, to_account, created_at
FROM transactions
WHERE account_number = $1
ORDER BY seq DESC`

	rows, err := r.db.QueryContext(ctx, query, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("list transactions for %s: %w", accountNumber, err)
	}
	defer rows.Close()

	var entries []domain.Transaction
	for rows.Next() {
		var entry domain.Transaction
		var transferRef, fromAccount, toAccount sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.Type,
			&entry.Amount,
			&entry.Balance,
			&entry.Description,
			&transferRef,
			&fromAccount,
			&toAccount,
			&entry.Date,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		entry.TransferRef = transferRef.String
		entry.FromAccount = fromAccount.String
		entry.ToAccount = toAccount.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions for %s: %w", accountNumber, err)
	}

	return entries, nil
}

func updateBalance(ctx context.Context, tx *sql.Tx, account domain.Account) error {
	const query = `
UPDATE accounts
SET balance = $2, updated_at = NOW()
WHERE account_number = $1`

	result, err := tx.ExecContext(ctx, query, account.AccountNumber, account.Balance)
	if err != nil {
		return fmt.Errorf("update balance for %s: %w", account.AccountNumber, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update balance for %s: %w", account.AccountNumber, err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, accountNumber string, entry domain.Transaction) error {
	const query = `
INSERT INTO transactions (id, account_number, type, amount, balance, description, transfer_ref, from_account, to_account, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO NOTHING`

	if _, err := tx.ExecContext(
		ctx,
		query,
		entry.ID,
		accountNumber,
		entry.Type,
		entry.Amount,
		entry.Balance,
		entry.Description,
		nullable(entry.TransferRef),
		nullable(entry.FromAccount),
		nullable(entry.ToAccount),
		entryDate(entry.Date),
	); err != nil {
		return fmt.Errorf("insert transaction %s: %w", entry.ID, err)
	}

	return nil
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func entryDate(date time.Time) time.Time {
	if date.IsZero() {
		return time.Now()
	}
	return date
}
