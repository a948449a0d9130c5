package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/securebank-core/src/internal/commons"
	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const accountNumberAttempts = 5

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) Register(ctx context.Context, req models.RegisterAccountRequest) (commons.Response[models.RegisterAccountResponse], error) {
	logger.Info("account service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service register validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterAccountResponse]("validation failed", err.Error()), err
	}

	initialDeposit, err := decimal.NewFromString(strings.TrimSpace(req.InitialDeposit))
	if err != nil {
		return commons.ErrorResponse[models.RegisterAccountResponse]("validation failed", "initialDeposit must be numeric"), err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("account service register hash password failed", err, nil)
		return commons.ErrorResponse[models.RegisterAccountResponse]("failed to register account", "Unable to register account right now"), err
	}

	accountNumber, err := s.generateUniqueAccountNumber(ctx)
	if err != nil {
		logger.Error("account service register generate account number failed", err, nil)
		return commons.ErrorResponse[models.RegisterAccountResponse]("failed to register account", "Unable to register account right now"), err
	}

	now := time.Now()
	account := domain.Account{
		AccountNumber: accountNumber,
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		PasswordHash:  passwordHash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	account, err = domain.ApplyDeposit(account, initialDeposit, domain.DescriptionInitialDeposit)
	if err != nil {
		return commons.ErrorResponse[models.RegisterAccountResponse]("validation failed", err.Error()), err
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service register repository failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return commons.ErrorResponse[models.RegisterAccountResponse]("failed to register account", "Unable to register account right now"), err
	}

	response := models.RegisterAccountResponse{
		AccountNumber: created.AccountNumber,
		FullName:      created.FullName,
		Balance:       created.Balance.StringFixed(2),
		CreatedAt:     created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("account service register success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"fullName":      response.FullName,
	})

	return commons.SuccessResponse("account registered successfully", response), nil
}

// Login verifies credentials. Unknown account numbers and wrong passwords
// deliberately yield the same user-facing failure; the two cases are told
// apart in the server log only.
func (s *AccountService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Info("account service login unknown account", logger.Fields{
				"accountNumber": accountNumber,
			})
			return commons.ErrorResponse[models.AccountResponse]("login failed", domain.ErrInvalidCredentials.Error()), domain.ErrInvalidCredentials
		}
		logger.Error("account service login lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to login", "Unable to login right now"), err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		logger.Info("account service login password mismatch", logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("login failed", domain.ErrInvalidCredentials.Error()), domain.ErrInvalidCredentials
	}

	logger.Info("account service login success", logger.Fields{
		"accountNumber": account.AccountNumber,
	})

	return commons.SuccessResponse("login successful", mapAccountToResponse(account)), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if !models.IsNineDigitAccountNumber(accountNumber) {
		err := fmt.Errorf("accountNumber must be exactly 9 digits")
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("account service get account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	return commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return commons.ErrorResponse[[]models.AccountSummary]("failed to list accounts", "Unable to list accounts right now"), err
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, models.AccountSummary{
			AccountNumber: account.AccountNumber,
			FullName:      account.FullName,
		})
	}

	return commons.SuccessResponse("accounts fetched successfully", summaries), nil
}

// generateUniqueAccountNumber draws a random 9-digit number and verifies it
// against the registry, retrying on collision.
func (s *AccountService) generateUniqueAccountNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		candidate := fmt.Sprintf("%d", 100000000+rand.Intn(900000000))

		exists, err := s.accountRepo.ExistsByAccountNumber(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check account number uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not generate a unique account number after %d attempts", accountNumberAttempts)
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
