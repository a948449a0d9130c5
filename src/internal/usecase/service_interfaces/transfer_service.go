package service_interfaces

import (
	"context"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/commons"
)

type TransferService interface {
	TransferFunds(ctx context.Context, req models.TransferFundsRequest) (commons.Response[models.TransferFundsResponse], error)
}
