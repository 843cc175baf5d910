package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

var errNoHeader = errors.New("no header row found: expected service, category and price columns")

// Header aliases accepted for each column, lower-cased.
var (
	nameCols     = []string{"service", "name", "service name"}
	categoryCols = []string{"category", "type"}
	priceCols    = []string{"price", "unit price", "rate"}
)

type columns struct {
	name, category, price int
}

// LoadFile reads a price list from path. See Load for the format.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening price list: %w", err)
	}
	defer f.Close()

	items, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return New(items), nil
}

// Load parses a delimited price list. The first row holding service, category
// and price headers starts the data; rows above it are ignored. Fields may be
// separated by ';' or ','.
func Load(r io.Reader) ([]Item, error) {
	utf8r, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read price list: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, errNoHeader
	}

	return parseItems(cols, rows[headerIdx+1:], headerIdx+1)
}

// sniffDelimiter picks ';' when the first non-blank line contains one.
func sniffDelimiter(data []byte) rune {
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		if bytes.ContainsRune(line, ';') {
			return ';'
		}

		return ','
	}

	return ','
}

func findHeader(rows [][]string) (columns, int, bool) {
	for rowIdx, row := range rows {
		cols := columns{name: -1, category: -1, price: -1}

		for i, cell := range row {
			h := strings.ToLower(strings.TrimSpace(cell))

			switch {
			case matches(h, nameCols):
				cols.name = i
			case matches(h, categoryCols):
				cols.category = i
			case matches(h, priceCols):
				cols.price = i
			}
		}

		if cols.name >= 0 && cols.price >= 0 {
			return cols, rowIdx, true
		}
	}

	return columns{}, 0, false
}

func matches(h string, aliases []string) bool {
	for _, a := range aliases {
		if h == a {
			return true
		}
	}

	return false
}

func parseItems(cols columns, rows [][]string, headerRowNum int) ([]Item, error) {
	var items []Item

	for i, row := range rows {
		rowNum := headerRowNum + i + 1

		name := cellValue(row, cols.name)
		if name == "" {
			continue
		}

		raw := cellValue(row, cols.price)

		price, err := ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", rowNum, raw, err)
		}

		if price <= 0 {
			return nil, fmt.Errorf("row %d: %w", rowNum, ledger.ErrInvalidAmount)
		}

		category := cellValue(row, cols.category)
		if category == "" {
			category = ledger.CategoryOther
		}

		items = append(items, Item{
			Name:      name,
			Category:  strings.ToLower(category),
			UnitPrice: price,
		})
	}

	return items, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
