package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/memory"
	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/usecase/services"
)

func TestAccountServiceRegisterValidationError(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())

	_, err := svc.Register(context.Background(), models.RegisterAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty register request")
	}
}

func TestAccountServiceRegisterRejectsShortPassword(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())

	_, err := svc.Register(context.Background(), models.RegisterAccountRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "5551234567",
		Address:         "12 High Street",
		InitialDeposit:  "250",
		Password:        "short",
		ConfirmPassword: "short",
	})
	if err == nil || !strings.Contains(err.Error(), "at least 6 characters") {
		t.Fatalf("expected short password error, got %v", err)
	}
}

func TestAccountServiceRegisterRejectsPasswordMismatch(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())

	_, err := svc.Register(context.Background(), models.RegisterAccountRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "5551234567",
		Address:         "12 High Street",
		InitialDeposit:  "250",
		Password:        "hunter22",
		ConfirmPassword: "hunter23",
	})
	if err == nil || !strings.Contains(err.Error(), "do not match") {
		t.Fatalf("expected password mismatch error, got %v", err)
	}
}

func TestAccountServiceRegisterEnforcesMinimumDeposit(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewAccountService(repo)

	req := models.RegisterAccountRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "5551234567",
		Address:         "12 High Street",
		InitialDeposit:  "99",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	}
	if _, err := svc.Register(context.Background(), req); err == nil {
		t.Fatal("expected validation error for initialDeposit below 100")
	}

	req.InitialDeposit = "100"
	resp, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("expected register with initialDeposit 100 to succeed, got %v", err)
	}

	account := mustGetAccount(t, repo, resp.Data.AccountNumber)
	if len(account.Transactions) != 1 {
		t.Fatalf("expected exactly one seed transaction, got %d", len(account.Transactions))
	}
	seed := account.Transactions[0]
	if seed.Type != domain.TransactionTypeDeposit {
		t.Fatalf("expected seed transaction type deposit, got %s", seed.Type)
	}
	if seed.Description != domain.DescriptionInitialDeposit {
		t.Fatalf("expected seed description %q, got %q", domain.DescriptionInitialDeposit, seed.Description)
	}
	if seed.Balance.StringFixed(2) != "100.00" {
		t.Fatalf("expected seed balance 100.00, got %s", seed.Balance.StringFixed(2))
	}
	assertHeadBalanceInvariant(t, account)
}

func TestAccountServiceRegisterGeneratesNineDigitNumber(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())

	accountNumber := registerAccount(t, svc, "Jane Doe", "500")
	if !models.IsNineDigitAccountNumber(accountNumber) {
		t.Fatalf("expected a 9-digit account number, got %q", accountNumber)
	}
}

func TestAccountServiceLoginSuccess(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewAccountService(repo)

	accountNumber := registerAccount(t, svc, "Jane Doe", "500")

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		AccountNumber: accountNumber,
		Password:      "hunter22",
	})
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if resp.Data == nil || resp.Data.AccountNumber != accountNumber {
		t.Fatalf("expected login response for account %s, got %+v", accountNumber, resp.Data)
	}
	if resp.Data.Balance != "500.00" {
		t.Fatalf("expected balance 500.00, got %s", resp.Data.Balance)
	}
}

func TestAccountServiceLoginCollapsesFailureKinds(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())

	accountNumber := registerAccount(t, svc, "Jane Doe", "500")

	wrongPassword, errWrongPassword := svc.Login(context.Background(), models.LoginRequest{
		AccountNumber: accountNumber,
		Password:      "not-the-password",
	})
	unknownAccount, errUnknownAccount := svc.Login(context.Background(), models.LoginRequest{
		AccountNumber: "000000001",
		Password:      "hunter22",
	})

	if !errors.Is(errWrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownAccount, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown account, got %v", errUnknownAccount)
	}
	if wrongPassword.Message != unknownAccount.Message {
		t.Fatalf("expected identical user-facing failures, got %q and %q",
			wrongPassword.Message, unknownAccount.Message)
	}
}

func TestAccountServiceGetAccountNotFound(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())

	_, err := svc.GetAccount(context.Background(), "123456789")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestAccountServiceListAccounts(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewAccountService(repo)

	first := registerAccount(t, svc, "Jane Doe", "500")
	second := registerAccount(t, svc, "John Roe", "250")

	resp, err := svc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	summaries := *resp.Data
	if len(summaries) != 2 {
		t.Fatalf("expected 2 account summaries, got %d", len(summaries))
	}
	if summaries[0].AccountNumber != first || summaries[1].AccountNumber != second {
		t.Fatalf("expected summaries in registration order, got %+v", summaries)
	}
}
