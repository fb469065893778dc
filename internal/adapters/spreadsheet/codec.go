// Package spreadsheet converts between xlsx workbooks and the bulk-import row
// types. Row-level parse failures are reported per row, never aborting the
// whole sheet.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

var customerHeader = []string{"Name", "Phone", "Region", "Gold Debt", "Cash Debt", "Credit Limit", "Salesperson ID"}

var saleHeader = []string{"Branch", "Salesperson", "Gold 18 Star", "Gold 18 Plain", "Gold 21 Plain", "Gold 21 Star", "Total Sales", "Date"}

// saleDateLayouts are the date formats accepted from sale sheets, tried in
// order.
var saleDateLayouts = []string{"2006-01-02", "02/01/2006", "01-02-06"}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %q", raw)
	}
	return d, nil
}

// ReadCustomers parses an uploaded customer workbook. The first sheet is
// read; the first row is treated as a header and skipped.
func ReadCustomers(r io.Reader) ([]dto.CustomerRow, []dto.RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var parsed []dto.CustomerRow
	var rowErrors []dto.RowError
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		customerRow, err := parseCustomerRow(row)
		if err != nil {
			rowErrors = append(rowErrors, dto.RowError{
				Row:     i + 1,
				Name:    cell(row, 0),
				Phone:   cell(row, 1),
				Message: err.Error(),
			})
			continue
		}
		parsed = append(parsed, customerRow)
	}
	return parsed, rowErrors, nil
}

func parseCustomerRow(row []string) (dto.CustomerRow, error) {
	out := dto.CustomerRow{
		Name:          cell(row, 0),
		Phone:         cell(row, 1),
		Region:        cell(row, 2),
		SalesPersonID: cell(row, 6),
	}
	if out.Name == "" {
		return dto.CustomerRow{}, fmt.Errorf("name is required")
	}
	if out.Phone == "" {
		return dto.CustomerRow{}, fmt.Errorf("phone is required")
	}
	if out.Region == "" {
		return dto.CustomerRow{}, fmt.Errorf("region is required")
	}

	var err error
	if out.GoldDebt, err = parseAmount(cell(row, 3)); err != nil {
		return dto.CustomerRow{}, fmt.Errorf("gold debt: %w", err)
	}
	if out.CashDebt, err = parseAmount(cell(row, 4)); err != nil {
		return dto.CustomerRow{}, fmt.Errorf("cash debt: %w", err)
	}
	if raw := cell(row, 5); raw != "" {
		limit, err := parseAmount(raw)
		if err != nil {
			return dto.CustomerRow{}, fmt.Errorf("credit limit: %w", err)
		}
		out.CreditLimit = &limit
	}
	return out, nil
}

// WriteCustomers renders the customer book as an xlsx workbook.
func WriteCustomers(w io.Writer, customers []domain.CustomerDetails) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range customerHeader {
		cellName, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, c := range customers {
		limit := ""
		if c.CreditLimit != nil {
			limit = c.CreditLimit.String()
		}
		values := []any{c.Name, c.Phone, c.Region, c.GoldDebt.String(), c.CashDebt.String(), limit, c.SalesPersonName}
		for col, v := range values {
			cellName, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ReadSales parses an uploaded daily-sales workbook.
func ReadSales(r io.Reader) ([]dto.SaleRow, []dto.RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var parsed []dto.SaleRow
	var rowErrors []dto.RowError
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		saleRow, err := parseSaleRow(row)
		if err != nil {
			rowErrors = append(rowErrors, dto.RowError{
				Row:     i + 1,
				Name:    cell(row, 1),
				Message: err.Error(),
			})
			continue
		}
		parsed = append(parsed, saleRow)
	}
	return parsed, rowErrors, nil
}

func parseSaleRow(row []string) (dto.SaleRow, error) {
	out := dto.SaleRow{
		Branch:      cell(row, 0),
		Salesperson: cell(row, 1),
	}
	if out.Branch == "" {
		return dto.SaleRow{}, fmt.Errorf("branch is required")
	}
	if out.Salesperson == "" {
		return dto.SaleRow{}, fmt.Errorf("salesperson is required")
	}

	var err error
	if out.Gold18Star, err = parseAmount(cell(row, 2)); err != nil {
		return dto.SaleRow{}, fmt.Errorf("gold 18 star: %w", err)
	}
	if out.Gold18Plain, err = parseAmount(cell(row, 3)); err != nil {
		return dto.SaleRow{}, fmt.Errorf("gold 18 plain: %w", err)
	}
	if out.Gold21Plain, err = parseAmount(cell(row, 4)); err != nil {
		return dto.SaleRow{}, fmt.Errorf("gold 21 plain: %w", err)
	}
	if out.Gold21Star, err = parseAmount(cell(row, 5)); err != nil {
		return dto.SaleRow{}, fmt.Errorf("gold 21 star: %w", err)
	}
	if out.TotalSales, err = parseAmount(cell(row, 6)); err != nil {
		return dto.SaleRow{}, fmt.Errorf("total sales: %w", err)
	}

	raw := cell(row, 7)
	if raw == "" {
		out.SaleDate = time.Now()
		return out, nil
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			out.SaleDate = t
			return out, nil
		}
	}
	return dto.SaleRow{}, fmt.Errorf("invalid date %q", raw)
}
