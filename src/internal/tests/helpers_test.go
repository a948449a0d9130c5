package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/memory"
	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func registerAccount(t *testing.T, svc *services.AccountService, fullName, initialDeposit string) string {
	t.Helper()

	resp, err := svc.Register(context.Background(), models.RegisterAccountRequest{
		FullName:        fullName,
		Email:           "jane@example.com",
		Phone:           "5551234567",
		Address:         "12 High Street",
		InitialDeposit:  initialDeposit,
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	if err != nil {
		t.Fatalf("register %s: %v", fullName, err)
	}
	if resp.Data == nil {
		t.Fatalf("register %s: missing response data", fullName)
	}

	return resp.Data.AccountNumber
}

// seedAccount plants an account directly in the repository, bypassing the
// registration minimum, for scenarios that need arbitrary starting balances.
func seedAccount(t *testing.T, repo *memory.AccountRepository, accountNumber, fullName string, balance int64) domain.Account {
	t.Helper()

	amount := decimal.NewFromInt(balance)
	account := domain.Account{
		AccountNumber: accountNumber,
		FullName:      fullName,
		Email:         "seed@example.com",
		Phone:         "5550000000",
		Address:       "1 Seed Lane",
		PasswordHash:  "not-a-real-hash",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	account, err := domain.ApplyDeposit(account, amount, domain.DescriptionInitialDeposit)
	if err != nil {
		t.Fatalf("seed account %s: %v", accountNumber, err)
	}

	created, err := repo.Create(context.Background(), account)
	if err != nil {
		t.Fatalf("seed account %s: %v", accountNumber, err)
	}

	return created
}

func mustGetAccount(t *testing.T, repo *memory.AccountRepository, accountNumber string) domain.Account {
	t.Helper()

	account, err := repo.GetByAccountNumber(context.Background(), accountNumber)
	if err != nil {
		t.Fatalf("get account %s: %v", accountNumber, err)
	}

	return account
}

func assertHeadBalanceInvariant(t *testing.T, account domain.Account) {
	t.Helper()

	head, ok := account.HeadTransaction()
	if !ok {
		t.Fatalf("account %s has no transactions", account.AccountNumber)
	}
	if !account.Balance.Equal(head.Balance) {
		t.Fatalf("account %s balance %s does not match head transaction balance %s",
			account.AccountNumber, account.Balance, head.Balance)
	}
}
