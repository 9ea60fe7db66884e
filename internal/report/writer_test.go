package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/receipt-generator/internal/catalog"
	"github.com/ginjaninja78/receipt-generator/internal/generator"
	"github.com/ginjaninja78/receipt-generator/internal/types"
)

func sampleResult(t *testing.T) (generator.Result, *catalog.Catalog) {
	t.Helper()

	cat, err := catalog.New([]catalog.Item{
		{Name: "Bread", Price: 40},
		{Name: "Milk", Price: 60},
	})
	require.NoError(t, err)

	res := generator.Result{
		Receipts: []types.Receipt{
			{
				ID: 1,
				LineItems: []types.LineItem{
					{Item: "Bread", Quantity: 2, UnitPrice: 40},
					{Item: "Milk", Quantity: 1, UnitPrice: 60},
				},
			},
			{ID: 2, LineItems: []types.LineItem{}},
		},
		RealizedTotal: 140,
		EventCount:    3,
	}
	return res, cat
}

func TestWriteReceiptsSheet(t *testing.T) {
	res, cat := sampleResult(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, Write(path, res, cat, 120, DefaultOptions()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(sheet, cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	// First receipt block.
	assert.Equal(t, "Receipt 1", get("Receipts", "A1"))
	assert.Equal(t, "Item", get("Receipts", "A2"))
	assert.Equal(t, "Line Total", get("Receipts", "D2"))
	assert.Equal(t, "Bread", get("Receipts", "A3"))
	assert.Equal(t, "2", get("Receipts", "B3"))
	assert.Equal(t, "40", get("Receipts", "C3"))
	assert.Equal(t, "80", get("Receipts", "D3"))
	assert.Equal(t, "Milk", get("Receipts", "A4"))
	assert.Equal(t, "Receipt Total", get("Receipts", "A5"))
	assert.Equal(t, "140", get("Receipts", "D5"))

	// Empty receipt block still renders title, header and zero total.
	assert.Equal(t, "Receipt 2", get("Receipts", "A7"))
	assert.Equal(t, "Receipt Total", get("Receipts", "A9"))
	assert.Equal(t, "0", get("Receipts", "D9"))
}

func TestWriteSummarySheet(t *testing.T) {
	res, cat := sampleResult(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, Write(path, res, cat, 120, DefaultOptions()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Summary", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Target Amount", get("A1"))
	assert.Equal(t, "120", get("B1"))
	assert.Equal(t, "Realized Total", get("A2"))
	assert.Equal(t, "140", get("B2"))
	assert.Equal(t, "Receipt Count", get("A3"))
	assert.Equal(t, "2", get("B3"))
	assert.Equal(t, "Purchase Events", get("A4"))
	assert.Equal(t, "3", get("B4"))

	// Aggregate quantity table.
	assert.Equal(t, "Item", get("A6"))
	assert.Equal(t, "Total Quantity", get("B6"))
	assert.Equal(t, "Bread", get("A7"))
	assert.Equal(t, "2", get("B7"))
	assert.Equal(t, "Milk", get("A8"))
	assert.Equal(t, "1", get("B8"))
}

func TestWriteCustomOptions(t *testing.T) {
	res, cat := sampleResult(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	opts := Options{
		ReceiptsSheet: "Batch",
		SummarySheet:  "Totals",
		Currency:      "JPY",
		IncludeChart:  false,
	}
	require.NoError(t, Write(path, res, cat, 120, opts))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Batch", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Receipt 1", v)

	v, err = f.GetCellValue("Totals", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Target Amount", v)
}
