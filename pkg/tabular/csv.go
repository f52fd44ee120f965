package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/goliatone/go-intl/pkg/catalog"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MarshalCSV renders the set as RFC 4180 CSV, one grid row per line.
func MarshalCSV(s *catalog.Set) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(ToRows(s)); err != nil {
		return nil, fmt.Errorf("tabular: write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalCSV parses CSV bytes and applies them to the set. A UTF-8 byte
// order mark is tolerated since spreadsheet exports routinely carry one, and
// rows may have fewer cells than the header; missing cells read as empty.
func UnmarshalCSV(data []byte, s *catalog.Set) error {
	data = bytes.TrimPrefix(data, utf8BOM)
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("tabular: read csv: %w", err)
	}
	return FromRows(rows, s)
}
