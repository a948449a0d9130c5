package services

import (
	"context"
	"errors"
	"strings"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/securebank-core/src/internal/commons"
	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/logger"
	"github.com/shopspring/decimal"
)

// LedgerService orchestrates single-account balance mutations: load the
// account, apply the ledger transition, persist the updated snapshot.
type LedgerService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewLedgerService(accountRepo repo_interfaces.AccountRepository) *LedgerService {
	return &LedgerService{accountRepo: accountRepo}
}

func (s *LedgerService) DepositFunds(ctx context.Context, req models.DepositFundsRequest) (commons.Response[models.DepositFundsResponse], error) {
	logger.Info("ledger service deposit funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service deposit funds validation failed", err, nil)
		return commons.ErrorResponse[models.DepositFundsResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.DepositFundsResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.DepositFundsResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	updated, err := domain.ApplyDeposit(account, amount, "")
	if err != nil {
		return commons.ErrorResponse[models.DepositFundsResponse]("validation failed", err.Error()), err
	}

	updated, err = s.accountRepo.Update(ctx, updated)
	if err != nil {
		logger.Error("ledger service deposit funds persist failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.DepositFundsResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	head, _ := updated.HeadTransaction()
	response := models.DepositFundsResponse{
		AccountNumber:   updated.AccountNumber,
		DepositedAmount: amount.StringFixed(2),
		Balance:         updated.Balance.StringFixed(2),
		Transaction:     mapTransactionToModel(head),
	}

	logger.Info("ledger service deposit funds success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"depositedAmount": response.DepositedAmount,
		"balance":         response.Balance,
	})

	return commons.SuccessResponse("funds deposited successfully", response), nil
}

func (s *LedgerService) WithdrawFunds(ctx context.Context, req models.WithdrawFundsRequest) (commons.Response[models.WithdrawFundsResponse], error) {
	logger.Info("ledger service withdraw funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service withdraw funds validation failed", err, nil)
		return commons.ErrorResponse[models.WithdrawFundsResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.WithdrawFundsResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	updated, err := domain.ApplyWithdrawal(account, amount, "")
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.WithdrawFundsResponse]("Insufficient funds", err.Error()), err
		}
		return commons.ErrorResponse[models.WithdrawFundsResponse]("validation failed", err.Error()), err
	}

	updated, err = s.accountRepo.Update(ctx, updated)
	if err != nil {
		logger.Error("ledger service withdraw funds persist failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.WithdrawFundsResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	head, _ := updated.HeadTransaction()
	response := models.WithdrawFundsResponse{
		AccountNumber:   updated.AccountNumber,
		WithdrawnAmount: amount.StringFixed(2),
		Balance:         updated.Balance.StringFixed(2),
		Transaction:     mapTransactionToModel(head),
	}

	logger.Info("ledger service withdraw funds success", logger.Fields{
		"accountNumber":   response.AccountNumber,
		"withdrawnAmount": response.WithdrawnAmount,
		"balance":         response.Balance,
	})

	return commons.SuccessResponse("funds withdrawn successfully", response), nil
}
