package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/shopspring/decimal"
)

func testAccount(accountNumber, fullName string, balance int64) domain.Account {
	account := domain.Account{
		AccountNumber: accountNumber,
		FullName:      fullName,
		Email:         "test@example.com",
		PasswordHash:  "hash",
	}
	seeded, err := domain.ApplyDeposit(account, decimal.NewFromInt(balance), domain.DescriptionInitialDeposit)
	if err != nil {
		panic(err)
	}
	return seeded
}

func TestCreateAndReloadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")

	repo, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	if _, err := repo.Create(context.Background(), testAccount("123456789", "Alice Example", 500)); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A fresh repository over the same file sees the persisted account.
	reopened, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("reopen repository: %v", err)
	}
	account, err := reopened.GetByAccountNumber(context.Background(), "123456789")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if account.FullName != "Alice Example" {
		t.Fatalf("unexpected full name %q", account.FullName)
	}
	if account.Balance.StringFixed(2) != "500.00" {
		t.Fatalf("unexpected balance %s", account.Balance.StringFixed(2))
	}
	if len(account.Transactions) != 1 {
		t.Fatalf("expected 1 persisted transaction, got %d", len(account.Transactions))
	}
}

func TestCreateRejectsDuplicateAccountNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	if _, err := repo.Create(context.Background(), testAccount("123456789", "Alice Example", 500)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(context.Background(), testAccount("123456789", "Mallory Example", 10)); err == nil {
		t.Fatal("expected duplicate account number to be rejected")
	}
}

func TestCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "accounts.json")
	repo, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	if _, err := repo.Create(context.Background(), testAccount("123456789", "Alice Example", 500)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot file at %s: %v", path, err)
	}
}

func TestUpdateUnknownAccount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	_, err = repo.Update(context.Background(), testAccount("123456789", "Alice Example", 500))
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestGetByAccountNumberReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	if _, err := repo.Create(context.Background(), testAccount("123456789", "Alice Example", 500)); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := repo.GetByAccountNumber(context.Background(), "123456789")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	first.Transactions[0].Description = "tampered"

	second, err := repo.GetByAccountNumber(context.Background(), "123456789")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if second.Transactions[0].Description == "tampered" {
		t.Fatal("expected repository state to be isolated from returned copies")
	}
}

func TestApplyTransferPersistsBothAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	sender, err := repo.Create(context.Background(), testAccount("123456789", "Alice Example", 500))
	if err != nil {
		t.Fatalf("create sender: %v", err)
	}
	recipient, err := repo.Create(context.Background(), testAccount("987654321", "Bob Example", 50))
	if err != nil {
		t.Fatalf("create recipient: %v", err)
	}

	result, err := domain.BuildTransfer(sender, recipient, decimal.NewFromInt(300), "")
	if err != nil {
		t.Fatalf("build transfer: %v", err)
	}
	if err := repo.ApplyTransfer(context.Background(), result.Sender, result.Recipient); err != nil {
		t.Fatalf("apply transfer: %v", err)
	}

	reopened, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("reopen repository: %v", err)
	}
	persistedSender, err := reopened.GetByAccountNumber(context.Background(), "123456789")
	if err != nil {
		t.Fatalf("get sender: %v", err)
	}
	persistedRecipient, err := reopened.GetByAccountNumber(context.Background(), "987654321")
	if err != nil {
		t.Fatalf("get recipient: %v", err)
	}

	if persistedSender.Balance.StringFixed(2) != "200.00" {
		t.Fatalf("expected sender balance 200.00, got %s", persistedSender.Balance.StringFixed(2))
	}
	if persistedRecipient.Balance.StringFixed(2) != "350.00" {
		t.Fatalf("expected recipient balance 350.00, got %s", persistedRecipient.Balance.StringFixed(2))
	}

	outLeg := persistedSender.Transactions[0]
	inLeg := persistedRecipient.Transactions[0]
	if outLeg.TransferRef == "" || outLeg.TransferRef != inLeg.TransferRef {
		t.Fatal("expected both persisted legs to share a transfer reference")
	}
}

func TestApplyTransferUnknownAccount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo, err := NewAccountRepository(path)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}

	sender, err := repo.Create(context.Background(), testAccount("123456789", "Alice Example", 500))
	if err != nil {
		t.Fatalf("create sender: %v", err)
	}
	ghost := testAccount("987654321", "Bob Example", 50)

	result, err := domain.BuildTransfer(sender, ghost, decimal.NewFromInt(10), "")
	if err != nil {
		t.Fatalf("build transfer: %v", err)
	}
	if err := repo.ApplyTransfer(context.Background(), result.Sender, result.Recipient); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestLoadRejectsCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := NewAccountRepository(path); err == nil {
		t.Fatal("expected error for corrupt snapshot")
	}
}
