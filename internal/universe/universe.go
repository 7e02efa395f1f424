// Package universe loads the list of ticker symbols to ingest from a
// static CSV file.
package universe

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one row of the symbol list.
type Record struct {
	Symbol string
	Name   string
	Sector string
}

// Load reads symbol records from a CSV file with a Symbol,Name,Sector
// header. Missing trailing columns are tolerated; blank symbols are
// skipped. Order is preserved.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open universe: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses symbol records from a reader.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read universe header: %w", err)
	}
	symIdx, nameIdx, sectorIdx := 0, 1, 2
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "symbol", "ticker":
			symIdx = i
		case "name", "company":
			nameIdx = i
		case "sector":
			sectorIdx = i
		}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read universe row: %w", err)
		}
		rec := Record{Symbol: strings.TrimSpace(field(row, symIdx))}
		if rec.Symbol == "" {
			continue
		}
		rec.Name = strings.TrimSpace(field(row, nameIdx))
		rec.Sector = strings.TrimSpace(field(row, sectorIdx))
		records = append(records, rec)
	}
	return records, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// FilterPrefix returns the symbols whose ticker starts with the given
// prefix (case-insensitive), in input order. An empty prefix keeps all.
func FilterPrefix(records []Record, prefix string) []string {
	p := strings.ToUpper(prefix)
	var out []string
	for _, r := range records {
		if strings.HasPrefix(strings.ToUpper(r.Symbol), p) {
			out = append(out, r.Symbol)
		}
	}
	return out
}
