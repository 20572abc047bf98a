package sales

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numkit/internal/input"
)

const catalogueJSON = `[
	{"title": "Brown eggs", "type": "dairy", "price": 28.1},
	{"title": "Sweet fresh stawberry", "price": 29.45},
	{"title": "Asparagus", "price": 18},
	{"title": "Broken", "price": "free"},
	{"price": 3}
]`

const salesJSON = `[
	{"SALE_ID": 1, "Product": "Brown eggs", "Quantity": 2},
	{"SALE_ID": 1, "Product": "Asparagus", "Quantity": 1.5},
	{"SALE_ID": 2, "Product": "Elote", "Quantity": 1},
	{"SALE_ID": 2, "Product": "Sweet fresh stawberry", "Quantity": "two"},
	{"SALE_ID": 3, "Quantity": 4}
]`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestTotalsFromJSON(t *testing.T) {
	cat, err := LoadFile(writeFile(t, "catalogue.json", catalogueJSON))
	require.NoError(t, err)
	sales, err := LoadFile(writeFile(t, "sales.json", salesJSON))
	require.NoError(t, err)

	prices, issues := BuildPriceMap(cat)
	assert.Len(t, prices, 3)
	assert.Len(t, issues, 2)
	assert.Equal(t, 18.0, prices["Asparagus"])

	total, issues := TotalCost(prices, sales)
	assert.InDelta(t, 28.1*2+18*1.5, total, 1e-9)
	require.Len(t, issues, 3)
	assert.Equal(t, "Error: Product 'Elote' not found in price catalogue.", issues[0])
	assert.Equal(t, "Error: Invalid quantity for product 'Sweet fresh stawberry'.", issues[1])
	assert.Equal(t, "Error: Product 'None' not found in price catalogue.", issues[2])
}

func TestTotalsFromYAML(t *testing.T) {
	cat, err := LoadFile(writeFile(t, "catalogue.yaml", "- title: Tea\n  price: 2\n- title: Cake\n  price: 4.5\n"))
	require.NoError(t, err)
	sales, err := LoadFile(writeFile(t, "sales.yml", "- Product: Tea\n  Quantity: 3\n- Product: Cake\n  Quantity: 2\n"))
	require.NoError(t, err)

	prices, issues := BuildPriceMap(cat)
	assert.Empty(t, issues)
	total, issues := TotalCost(prices, sales)
	assert.Empty(t, issues)
	assert.InDelta(t, 15.0, total, 1e-9)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, input.ErrFileNotFound)

	_, err = LoadFile(writeFile(t, "bad.json", "[{"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNonListDocuments(t *testing.T) {
	prices, issues := BuildPriceMap(map[string]any{"title": "x"})
	assert.Empty(t, prices)
	assert.Equal(t, []string{"Error: Invalid catalogue format. Expected a list of products."}, issues)

	total, issues := TotalCost(prices, "nope")
	assert.Zero(t, total)
	assert.Equal(t, []string{"Error: Invalid sales format. Expected a list of sales."}, issues)
}

func TestBooleansAreNotNumbers(t *testing.T) {
	prices, issues := BuildPriceMap([]any{map[string]any{"title": "Flag", "price": true}})
	assert.Empty(t, prices)
	assert.Len(t, issues, 1)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatMoney(1234.56))
	assert.Equal(t, "$2,481.86", FormatMoney(2481.86))
	assert.Equal(t, "$12.50", FormatMoney(12.5))
	assert.Equal(t, "-$3.10", FormatMoney(-3.1))
}

func TestReport(t *testing.T) {
	got := Report(1234567.891, 250*time.Microsecond).String()
	want := "Sales Report\n" +
		"------------------------------\n" +
		"Total Cost: $1,234,567.89\n" +
		"Execution Time: 0.000250 seconds\n" +
		"------------------------------"
	assert.Equal(t, want, got)
}
