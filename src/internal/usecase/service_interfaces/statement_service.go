package service_interfaces

import (
	"context"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/commons"
)

type StatementService interface {
	GetStatement(ctx context.Context, req models.StatementRequest) (commons.Response[models.StatementResponse], error)
	ExportStatement(ctx context.Context, req models.ExportStatementRequest) (models.StatementExport, error)
}
