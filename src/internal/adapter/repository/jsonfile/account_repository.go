package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/logger"
)

// AccountRepository persists the registry as a single JSON file holding the
// flat list of accounts, rewritten wholesale on every mutation. Writes go
// through a temp file plus rename so an interrupted write never corrupts the
// snapshot, and a transfer's two account updates land in one snapshot write.
type AccountRepository struct {
	mu       sync.Mutex
	path     string
	accounts []domain.Account
}

func NewAccountRepository(path string) (*AccountRepository, error) {
	repo := &AccountRepository{path: path}

	if err := repo.load(); err != nil {
		return nil, err
	}

	logger.Info("jsonfile repository ready", logger.Fields{
		"path":     path,
		"accounts": len(repo.accounts),
	})
	return repo, nil
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.indexOf(account.AccountNumber); ok {
		return domain.Account{}, fmt.Errorf("account %s already exists", account.AccountNumber)
	}

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}

	r.accounts = append(r.accounts, account)
	if err := r.persist(); err != nil {
		r.accounts = r.accounts[:len(r.accounts)-1]
		return domain.Account{}, err
	}

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.indexOf(accountNumber)
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	return cloneAccount(r.accounts[idx]), nil
}

func (r *AccountRepository) ExistsByAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.indexOf(accountNumber)
	return ok, nil
}

func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, cloneAccount(account))
	}
	return out, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.indexOf(account.AccountNumber)
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	previous := r.accounts[idx]
	r.accounts[idx] = cloneAccount(account)
	if err := r.persist(); err != nil {
		r.accounts[idx] = previous
		return domain.Account{}, err
	}

	return account, nil
}

func (r *AccountRepository) ApplyTransfer(_ context.Context, sender domain.Account, recipient domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	senderIdx, ok := r.indexOf(sender.AccountNumber)
	if !ok {
		return domain.ErrRecordNotFound
	}
	recipientIdx, ok := r.indexOf(recipient.AccountNumber)
	if !ok {
		return domain.ErrRecordNotFound
	}

	previousSender := r.accounts[senderIdx]
	previousRecipient := r.accounts[recipientIdx]

	r.accounts[senderIdx] = cloneAccount(sender)
	r.accounts[recipientIdx] = cloneAccount(recipient)
	if err := r.persist(); err != nil {
		r.accounts[senderIdx] = previousSender
		r.accounts[recipientIdx] = previousRecipient
		return err
	}

	return nil
}

func (r *AccountRepository) load() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.accounts = nil
			return nil
		}
		return fmt.Errorf("read accounts file %q: %w", r.path, err)
	}

	var accounts []domain.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return fmt.Errorf("decode accounts file %q: %w", r.path, err)
	}

	r.accounts = accounts
	return nil
}

func (r *AccountRepository) persist() error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory %q: %w", dir, err)
		}
	}

	raw, err := json.MarshalIndent(r.accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write accounts snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace accounts snapshot: %w", err)
	}

	return nil
}

func (r *AccountRepository) indexOf(accountNumber string) (int, bool) {
	for i, account := range r.accounts {
		if account.AccountNumber == accountNumber {
			return i, true
		}
	}
	return 0, false
}

func cloneAccount(account domain.Account) domain.Account {
	entries := make([]domain.Transaction, len(account.Transactions))
	copy(entries, account.Transactions)
	account.Transactions = entries
	return account
}
