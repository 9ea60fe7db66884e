// =============================================================================
// Receipt Generator - XLSX Report Writer
// =============================================================================
//
// This module renders one generation run as an XLSX workbook:
//
//   "Receipts" sheet:
//     One block per receipt listing its line items (item, quantity, unit
//     price, line total = quantity * unit price) followed by the receipt
//     grand total. Empty receipts are rendered as a block with no item rows.
//
//   "Summary" sheet:
//     Run-level figures (target, realized total, receipt count, purchase
//     events) plus the aggregate quantity per item across all receipts,
//     rendered both as a table and as a bar chart.
//
// The summary chart and per-line totals mirror exactly the downstream
// computation a consuming UI performs over the generation result.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/receipt-generator/internal/catalog"
	"github.com/ginjaninja78/receipt-generator/internal/generator"
	"github.com/ginjaninja78/receipt-generator/internal/money"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls workbook generation.
type Options struct {
	// ReceiptsSheet is the name of the per-receipt sheet.
	// Default: "Receipts"
	ReceiptsSheet string

	// SummarySheet is the name of the summary sheet.
	// Default: "Summary"
	SummarySheet string

	// Currency is the ISO 4217 code used for amount display.
	// Default: money.DefaultCurrency
	Currency string

	// IncludeChart renders the quantity-per-item bar chart on the summary
	// sheet. Default: true
	IncludeChart bool
}

// DefaultOptions returns the default report options.
func DefaultOptions() Options {
	return Options{
		ReceiptsSheet: "Receipts",
		SummarySheet:  "Summary",
		Currency:      money.DefaultCurrency,
		IncludeChart:  true,
	}
}

// =============================================================================
// WRITER
// =============================================================================

// Write renders the generation result to an XLSX workbook at path.
func Write(path string, res generator.Result, cat *catalog.Catalog, target int64, opts Options) error {
	if opts.ReceiptsSheet == "" || opts.SummarySheet == "" || opts.Currency == "" {
		defaults := DefaultOptions()
		if opts.ReceiptsSheet == "" {
			opts.ReceiptsSheet = defaults.ReceiptsSheet
		}
		if opts.SummarySheet == "" {
			opts.SummarySheet = defaults.SummarySheet
		}
		if opts.Currency == "" {
			opts.Currency = defaults.Currency
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", opts.ReceiptsSheet); err != nil {
		return fmt.Errorf("failed to rename receipts sheet: %w", err)
	}
	if _, err := f.NewSheet(opts.SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeReceiptsSheet(f, opts.ReceiptsSheet, res, headerStyle); err != nil {
		return err
	}
	if err := writeSummarySheet(f, opts, res, cat, target, headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// =============================================================================
// RECEIPTS SHEET
// =============================================================================

// writeReceiptsSheet renders one block per receipt.
func writeReceiptsSheet(f *excelize.File, sheet string, res generator.Result, headerStyle int) error {
	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "D", 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	row := 1
	for _, receipt := range res.Receipts {
		if err := setRow(f, sheet, row, fmt.Sprintf("Receipt %d", receipt.ID)); err != nil {
			return err
		}
		if err := styleRow(f, sheet, row, "A", "A", headerStyle); err != nil {
			return err
		}
		row++

		if err := setRow(f, sheet, row, "Item", "Quantity", "Unit Price", "Line Total"); err != nil {
			return err
		}
		if err := styleRow(f, sheet, row, "A", "D", headerStyle); err != nil {
			return err
		}
		row++

		for _, li := range receipt.LineItems {
			if err := setRow(f, sheet, row, li.Item, li.Quantity, li.UnitPrice, li.LineTotal()); err != nil {
				return err
			}
			row++
		}

		if err := setRow(f, sheet, row, "Receipt Total", "", "", receipt.Total()); err != nil {
			return err
		}
		row += 2
	}

	return nil
}

// =============================================================================
// SUMMARY SHEET
// =============================================================================

// writeSummarySheet renders run-level figures, the aggregate quantity table
// and the bar chart.
func writeSummarySheet(f *excelize.File, opts Options, res generator.Result, cat *catalog.Catalog, target int64, headerStyle int) error {
	sheet := opts.SummarySheet

	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "C", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	figures := []struct {
		label     string
		value     interface{}
		formatted string
	}{
		{"Target Amount", target, money.Display(target, opts.Currency)},
		{"Realized Total", res.RealizedTotal, money.Display(res.RealizedTotal, opts.Currency)},
		{"Receipt Count", len(res.Receipts), ""},
		{"Purchase Events", res.EventCount, ""},
	}

	row := 1
	for _, fig := range figures {
		if err := setRow(f, sheet, row, fig.label, fig.value, fig.formatted); err != nil {
			return err
		}
		if err := styleRow(f, sheet, row, "A", "A", headerStyle); err != nil {
			return err
		}
		row++
	}
	row++

	tableStart := row + 1
	if err := setRow(f, sheet, row, "Item", "Total Quantity"); err != nil {
		return err
	}
	if err := styleRow(f, sheet, row, "A", "B", headerStyle); err != nil {
		return err
	}
	row++

	quantities := res.QuantityByItem(cat)
	for _, li := range quantities {
		if err := setRow(f, sheet, row, li.Item, li.Quantity); err != nil {
			return err
		}
		row++
	}
	tableEnd := row - 1

	if opts.IncludeChart && len(quantities) > 0 {
		chart := &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       "Total Quantity",
				Categories: fmt.Sprintf("%s!$A$%d:$A$%d", sheet, tableStart, tableEnd),
				Values:     fmt.Sprintf("%s!$B$%d:$B$%d", sheet, tableStart, tableEnd),
			}},
			Title: []excelize.RichTextRun{{
				Text: "Total quantity per item across all receipts",
			}},
			Legend:    excelize.ChartLegend{Position: "none"},
			Dimension: excelize.ChartDimension{Width: 560, Height: 320},
		}
		if err := f.AddChart(sheet, "E2", chart); err != nil {
			return fmt.Errorf("failed to add chart: %w", err)
		}
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// setRow writes values into consecutive columns of a row, starting at A.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// styleRow applies a style across a column range of one row.
func styleRow(f *excelize.File, sheet string, row int, fromCol, toCol string, style int) error {
	from := fmt.Sprintf("%s%d", fromCol, row)
	to := fmt.Sprintf("%s%d", toCol, row)
	if err := f.SetCellStyle(sheet, from, to, style); err != nil {
		return fmt.Errorf("failed to style row %d: %w", row, err)
	}
	return nil
}
