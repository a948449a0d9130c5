package service_interfaces

import (
	"context"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/commons"
)

type AccountService interface {
	Register(ctx context.Context, req models.RegisterAccountRequest) (commons.Response[models.RegisterAccountResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[[]models.AccountSummary], error)
}
