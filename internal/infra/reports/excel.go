package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/supply-ledger/internal/domain/ledger"
	"github.com/Spok95/supply-ledger/internal/domain/pricing"
)

// ClientReportExcel собирает xlsx детального отчёта клиента:
// строки расхода с зафиксированными ценами и итоговое сальдо внизу.
func ClientReportExcel(rows []ledger.DailyRow, summary *ledger.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"entry_date",
		"product_name",
		"unit",
		"quantity",
		"unit_price",
		"total_amount",
		"notes",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, it := range rows {
		excelRow := []interface{}{
			it.EntryDate.Format("2006-01-02"),
			it.ProductName,
			it.Unit,
			it.Quantity,
			it.UnitPrice,
			it.TotalAmount,
			it.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, err
		}
		row++
	}

	// пустая строка и блок итогов
	row++
	totals := [][]interface{}{
		{"total_consumption", summary.TotalConsumption},
		{"total_payments", summary.TotalPayments},
		{"balance", summary.Balance},
		{"status", summary.Status},
	}
	for _, t := range totals {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		line := t
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return nil, err
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CategoryPriceListExcel выгружает прайс-лист категории.
func CategoryPriceListExcel(categoryName string, rows []pricing.CategoryPriceRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"category",
		"product_id",
		"product_name",
		"product_code",
		"price",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, it := range rows {
		excelRow := []interface{}{
			categoryName,
			it.ProductID,
			it.ProductName,
			it.ProductCode,
			it.Price,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, err
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportFileName — имя вложения вида client_12_20260115.xlsx.
func ReportFileName(prefix string, clientID int64, date string) string {
	return fmt.Sprintf("%s_%d_%s.xlsx", prefix, clientID, date)
}
