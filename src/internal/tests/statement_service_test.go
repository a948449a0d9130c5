package services_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/api-sage/securebank-core/src/internal/adapter/http/models"
	"github.com/api-sage/securebank-core/src/internal/adapter/repository/memory"
	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/api-sage/securebank-core/src/internal/usecase/services"
)

// seedLedgerHistory builds an account with a mixed ledger: the registration
// deposit, a cash deposit, a withdrawal and one transfer out to a second
// account. Returns the sender's account number.
func seedLedgerHistory(t *testing.T, repo *memory.AccountRepository) string {
	t.Helper()

	accountSvc := services.NewAccountService(repo)
	ledgerSvc := services.NewLedgerService(repo)
	transferSvc := services.NewTransferService(repo)

	sender := registerAccount(t, accountSvc, "Alice Example", "500")
	recipient := seedAccount(t, repo, "987654321", "Bob Example", 50)

	if _, err := ledgerSvc.DepositFunds(context.Background(), models.DepositFundsRequest{
		AccountNumber: sender,
		Amount:        "200",
	}); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := ledgerSvc.WithdrawFunds(context.Background(), models.WithdrawFundsRequest{
		AccountNumber: sender,
		Amount:        "100",
	}); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if _, err := transferSvc.TransferFunds(context.Background(), models.TransferFundsRequest{
		FromAccount: sender,
		ToAccount:   recipient.AccountNumber,
		Amount:      "150",
	}); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	return sender
}

func TestStatementServiceAllFilterAndTotals(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	resp, err := svc.GetStatement(context.Background(), models.StatementRequest{
		AccountNumber: sender,
	})
	if err != nil {
		t.Fatalf("get statement: %v", err)
	}

	if resp.Data.Filter != models.StatementFilterAll {
		t.Fatalf("expected default filter %q, got %q", models.StatementFilterAll, resp.Data.Filter)
	}
	if resp.Data.Count != 4 {
		t.Fatalf("expected 4 transactions, got %d", resp.Data.Count)
	}
	// Credits: 500 registration + 200 deposit. Debits: 100 withdrawal + 150 out.
	if resp.Data.TotalCredits != "700.00" {
		t.Fatalf("expected total credits 700.00, got %s", resp.Data.TotalCredits)
	}
	if resp.Data.TotalDebits != "250.00" {
		t.Fatalf("expected total debits 250.00, got %s", resp.Data.TotalDebits)
	}
	if resp.Data.Transactions[0].Type != string(domain.TransactionTypeTransferOut) {
		t.Fatalf("expected newest-first ordering with transfer_out head, got %s", resp.Data.Transactions[0].Type)
	}
}

func TestStatementServiceTransferFilterCoversBothLegs(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	senderResp, err := svc.GetStatement(context.Background(), models.StatementRequest{
		AccountNumber: sender,
		Filter:        models.StatementFilterTransfer,
	})
	if err != nil {
		t.Fatalf("get sender statement: %v", err)
	}
	if senderResp.Data.Count != 1 {
		t.Fatalf("expected 1 transfer entry on sender, got %d", senderResp.Data.Count)
	}
	if senderResp.Data.Transactions[0].Type != string(domain.TransactionTypeTransferOut) {
		t.Fatalf("expected transfer_out, got %s", senderResp.Data.Transactions[0].Type)
	}

	recipientResp, err := svc.GetStatement(context.Background(), models.StatementRequest{
		AccountNumber: "987654321",
		Filter:        models.StatementFilterTransfer,
	})
	if err != nil {
		t.Fatalf("get recipient statement: %v", err)
	}
	if recipientResp.Data.Count != 1 {
		t.Fatalf("expected 1 transfer entry on recipient, got %d", recipientResp.Data.Count)
	}
	if recipientResp.Data.Transactions[0].Type != string(domain.TransactionTypeTransferIn) {
		t.Fatalf("expected transfer_in, got %s", recipientResp.Data.Transactions[0].Type)
	}
}

func TestStatementServiceTypeFilter(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	resp, err := svc.GetStatement(context.Background(), models.StatementRequest{
		AccountNumber: sender,
		Filter:        models.StatementFilterDeposit,
	})
	if err != nil {
		t.Fatalf("get statement: %v", err)
	}
	if resp.Data.Count != 2 {
		t.Fatalf("expected 2 deposit entries, got %d", resp.Data.Count)
	}
	for _, entry := range resp.Data.Transactions {
		if entry.Type != string(domain.TransactionTypeDeposit) {
			t.Fatalf("expected only deposit entries, got %s", entry.Type)
		}
	}
	// Totals are computed over the full ledger regardless of the filter.
	if resp.Data.TotalDebits != "250.00" {
		t.Fatalf("expected total debits 250.00, got %s", resp.Data.TotalDebits)
	}
}

func TestStatementServiceAccountNotFound(t *testing.T) {
	svc := services.NewStatementService(memory.NewAccountRepository())

	_, err := svc.GetStatement(context.Background(), models.StatementRequest{
		AccountNumber: "123456789",
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestStatementServiceExportCSV(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	export, err := svc.ExportStatement(context.Background(), models.ExportStatementRequest{
		AccountNumber: sender,
		Format:        models.StatementFormatCSV,
	})
	if err != nil {
		t.Fatalf("export csv: %v", err)
	}

	if export.Filename != "account_statement_"+sender+".csv" {
		t.Fatalf("unexpected filename %s", export.Filename)
	}
	if export.ContentType != "text/csv" {
		t.Fatalf("unexpected content type %s", export.ContentType)
	}

	records, err := csv.NewReader(bytes.NewReader(export.Content)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d", len(records))
	}
	header := records[0]
	want := []string{"Date", "Type", "Description", "Amount", "Balance"}
	for i, column := range want {
		if header[i] != column {
			t.Fatalf("expected header column %q at %d, got %q", column, i, header[i])
		}
	}
}

func TestStatementServiceExportDefaultsToCSV(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	export, err := svc.ExportStatement(context.Background(), models.ExportStatementRequest{
		AccountNumber: sender,
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if export.ContentType != "text/csv" {
		t.Fatalf("expected csv by default, got %s", export.ContentType)
	}
}

func TestStatementServiceExportPDF(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	export, err := svc.ExportStatement(context.Background(), models.ExportStatementRequest{
		AccountNumber: sender,
		Format:        models.StatementFormatPDF,
	})
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	if export.Filename != "account_statement_"+sender+".pdf" {
		t.Fatalf("unexpected filename %s", export.Filename)
	}
	if !bytes.HasPrefix(export.Content, []byte("%PDF")) {
		t.Fatal("expected PDF document header")
	}
}

func TestStatementServiceExportXLSX(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	export, err := svc.ExportStatement(context.Background(), models.ExportStatementRequest{
		AccountNumber: sender,
		Format:        models.StatementFormatXLSX,
	})
	if err != nil {
		t.Fatalf("export xlsx: %v", err)
	}
	if export.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type %s", export.ContentType)
	}
	// XLSX files are zip archives.
	if !bytes.HasPrefix(export.Content, []byte("PK")) {
		t.Fatal("expected zip archive header")
	}
}

func TestStatementServiceExportUnsupportedFormat(t *testing.T) {
	repo := memory.NewAccountRepository()
	svc := services.NewStatementService(repo)
	sender := seedLedgerHistory(t, repo)

	if _, err := svc.ExportStatement(context.Background(), models.ExportStatementRequest{
		AccountNumber: sender,
		Format:        "docx",
	}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
