package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSV renders a tabular query result as a CSV byte stream: one header row of
// column names followed by one row per record. It is a pure function of its
// inputs and never touches the store.
func CSV(columns []string, rows [][]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d fields, expected %d", i, len(row), len(columns))
		}
		for j, v := range row {
			record[j] = format(v)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func format(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case []byte:
		return string(x)
	case float64:
		return fmt.Sprintf("%.2f", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
