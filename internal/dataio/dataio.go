// Package dataio reads price series from CSV and writes analysis
// results as JSON. It belongs to the CLI harness, not the engine: the
// engine itself performs no IO.
package dataio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/crashwatch/internal/series"
)

// price column names recognized in a CSV header, in preference order.
var priceColumns = []string{"close", "price", "value"}

// LoadPrices reads a price series from a CSV file. A header row is
// detected by its first field failing to parse as a number; when
// present, a column named close, price or value is used, otherwise the
// last column. Headerless files use the last column. Rows that fail to
// parse are skipped.
func LoadPrices(path string) (series.Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, series.ErrEmpty
	}

	col := len(records[0]) - 1
	start := 0
	if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
		start = 1
		for i, name := range records[0] {
			if isPriceColumn(name) {
				col = i
				break
			}
		}
	}

	prices := make(series.Series, 0, len(records)-start)
	for _, record := range records[start:] {
		if col >= len(record) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
		if err != nil {
			continue
		}
		prices = append(prices, v)
	}

	if len(prices) == 0 {
		return nil, series.ErrEmpty
	}
	if !prices.AllPositive() {
		return nil, fmt.Errorf("dataio: %s contains non-positive prices", path)
	}
	return prices, nil
}

func isPriceColumn(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, want := range priceColumns {
		if name == want {
			return true
		}
	}
	return false
}

// SavePrices writes a price series as a two-column CSV with header.
func SavePrices(path string, prices series.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"t", "close"}); err != nil {
		return err
	}
	for i, p := range prices {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(p, 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
