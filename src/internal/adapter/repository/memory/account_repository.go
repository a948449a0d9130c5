package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/securebank-core/src/internal/domain"
)

// AccountRepository keeps the whole registry in a process-local map. It backs
// the test suites and the "memory" storage driver.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	order    []string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	if account.UpdatedAt.IsZero() {
		account.UpdatedAt = now
	}

	r.accounts[account.AccountNumber] = cloneAccount(account)
	r.order = append(r.order, account.AccountNumber)
	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	return cloneAccount(account), nil
}

func (r *AccountRepository) ExistsByAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accounts[accountNumber]
	return ok, nil
}

func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, cloneAccount(r.accounts[number]))
	}
	return out, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.AccountNumber]; !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	r.accounts[account.AccountNumber] = cloneAccount(account)
	return account, nil
}

func (r *AccountRepository) ApplyTransfer(_ context.Context, sender domain.Account, recipient domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[sender.AccountNumber]; !ok {
		return domain.ErrRecordNotFound
	}
	if _, ok := r.accounts[recipient.AccountNumber]; !ok {
		return domain.ErrRecordNotFound
	}

	r.accounts[sender.AccountNumber] = cloneAccount(sender)
	r.accounts[recipient.AccountNumber] = cloneAccount(recipient)
	return nil
}

func cloneAccount(account domain.Account) domain.Account {
	entries := make([]domain.Transaction, len(account.Transactions))
	copy(entries, account.Transactions)
	account.Transactions = entries
	return account
}
