package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/controller"
	"github.com/api-sage/securebank-core/src/internal/adapter/http/middleware"
	"github.com/api-sage/securebank-core/src/internal/adapter/http/router"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/jsonfile"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/memory"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/postgres"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/securebank-core/src/internal/config"
	"github.com/api-sage/securebank-core/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountRepo, err := buildAccountRepository(cfg)
	if err != nil {
		log.Fatalf("initialize storage (%s): %v", cfg.StorageDriver, err)
	}

	accountService := services.NewAccountService(accountRepo)
	ledgerService := services.NewLedgerService(accountRepo)
	transferService := services.NewTransferService(accountRepo)
	statementService := services.NewStatementService(accountRepo)

	mux := router.New(
		controller.NewAccountController(accountService),
		controller.NewFundsController(ledgerService),
		controller.NewTransferController(transferService),
		controller.NewStatementController(statementService),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("securebank core listening on %s (storage driver: %s)", addr, cfg.StorageDriver)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func buildAccountRepository(cfg config.Config) (repo_interfaces.AccountRepository, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}

		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return postgres.NewAccountRepository(db), nil
	case config.StorageDriverMemory:
		return memory.NewAccountRepository(), nil
	default:
		return jsonfile.NewAccountRepository(cfg.DataFile)
	}
}
