package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/api-sage/securebank-core/src/internal/domain"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// renderCSV writes the statement rows with the columns Date, Type,
// Description, Amount, Balance.
func renderCSV(entries []domain.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Date", "Type", "Description", "Amount", "Balance"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			entry.Date.Format(statementDateLayout),
			string(entry.Type),
			entry.Description,
			entry.Amount.StringFixed(2),
			entry.Balance.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// renderPDF lays the statement out as a credit/debit table: each entry's
// amount lands in the Credit or Debit column depending on its direction.
func renderPDF(account domain.Account, entries []domain.Transaction) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Account Statement - %s (%s)", account.FullName, account.AccountNumber))
	pdf.Ln(12)

	widths := []float64{50, 95, 40, 40, 40}
	headers := []string{"Date", "Description", "Credit", "Debit", "Balance"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, entry := range entries {
		credit, debit := "", ""
		if entry.IsCredit() {
			credit = entry.Amount.StringFixed(2)
		} else {
			debit = entry.Amount.StringFixed(2)
		}

		pdf.CellFormat(widths[0], 8, entry.Date.Format(statementDateLayout), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 8, entry.Description, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 8, credit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, debit, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, entry.Balance.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf statement: %w", err)
	}

	return buf.Bytes(), nil
}

func renderXLSX(entries []domain.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheetName = "Account Statement"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create statement sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Date", "Description", "Credit", "Debit", "Balance"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("write xlsx header: %w", err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		credit, debit := "", ""
		if entry.IsCredit() {
			credit = entry.Amount.StringFixed(2)
		} else {
			debit = entry.Amount.StringFixed(2)
		}

		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.Date.Format(statementDateLayout))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.Description)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), credit)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), debit)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), entry.Balance.StringFixed(2))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx statement: %w", err)
	}

	return buf.Bytes(), nil
}
