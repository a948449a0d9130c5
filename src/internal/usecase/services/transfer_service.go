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

// TransferService moves funds between two registered accounts. Both legs are
// computed as one logical operation sharing a transfer reference and are
// persisted through the repository in a single storage transaction.
type TransferService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewTransferService(accountRepo repo_interfaces.AccountRepository) *TransferService {
	return &TransferService{accountRepo: accountRepo}
}

func (s *TransferService) TransferFunds(ctx context.Context, req models.TransferFundsRequest) (commons.Response[models.TransferFundsResponse], error) {
	logger.Info("transfer service transfer funds request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service transfer funds validation failed", err, nil)
		return commons.ErrorResponse[models.TransferFundsResponse]("validation failed", err.Error()), err
	}

	fromAccount := strings.TrimSpace(req.FromAccount)
	toAccount := strings.TrimSpace(req.ToAccount)
	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))

	sender, err := s.accountRepo.GetByAccountNumber(ctx, fromAccount)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferFundsResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.TransferFundsResponse]("failed to transfer funds", "Unable to transfer funds right now"), err
	}

	recipient, err := s.accountRepo.GetByAccountNumber(ctx, toAccount)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Info("transfer service recipient not found", logger.Fields{
				"fromAccount": fromAccount,
				"toAccount":   toAccount,
			})
			err = domain.ErrRecipientNotFound
			return commons.ErrorResponse[models.TransferFundsResponse]("Recipient account not found", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferFundsResponse]("failed to transfer funds", "Unable to transfer funds right now"), err
	}

	result, err := domain.BuildTransfer(sender, recipient, amount, strings.TrimSpace(req.Description))
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransferFundsResponse]("Insufficient funds", err.Error()), err
		}
		return commons.ErrorResponse[models.TransferFundsResponse]("validation failed", err.Error()), err
	}

	if err := s.accountRepo.ApplyTransfer(ctx, result.Sender, result.Recipient); err != nil {
		logger.Error("transfer service persist failed", err, logger.Fields{
			"transferRef": result.TransferRef,
			"fromAccount": fromAccount,
			"toAccount":   toAccount,
		})
		return commons.ErrorResponse[models.TransferFundsResponse]("failed to transfer funds", "Unable to transfer funds right now"), err
	}

	head, _ := result.Sender.HeadTransaction()
	response := models.TransferFundsResponse{
		TransferRef:   result.TransferRef,
		FromAccount:   result.Sender.AccountNumber,
		ToAccount:     result.Recipient.AccountNumber,
		Amount:        amount.StringFixed(2),
		SenderBalance: result.Sender.Balance.StringFixed(2),
		Transaction:   mapTransactionToModel(head),
	}

	logger.Info("transfer service transfer funds success", logger.Fields{
		"transferRef":   response.TransferRef,
		"fromAccount":   response.FromAccount,
		"toAccount":     response.ToAccount,
		"amount":        response.Amount,
		"senderBalance": response.SenderBalance,
	})

	return commons.SuccessResponse("transfer completed successfully", response), nil
}
