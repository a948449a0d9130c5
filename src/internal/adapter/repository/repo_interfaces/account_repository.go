package repo_interfaces

import (
	"context"

	"github.com/api-sage/securebank-core/src/internal/domain"
)

// AccountRepository is the authoritative registry of all accounts. It is the
// sole writer of the persisted account collection.
//
// Update persists an already-mutated account snapshot: the stored balance is
// replaced and the snapshot's head transaction is recorded if it has not been
// seen before. ApplyTransfer does the same for both sides of a transfer
// inside a single storage transaction, so a sender can never be debited
// without its recipient being credited.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, account domain.Account) (domain.Account, error)
	ApplyTransfer(ctx context.Context, sender domain.Account, recipient domain.Account) error
}
