// internal/loader/infer.go
package loader

import (
	"fmt"
	"strconv"
	"time"
)

// Postgres column types in inference precedence order: a column keeps the
// most specific type every non-empty value satisfies, degrading to text.
const (
	typeBigint    = "bigint"
	typeDouble    = "double precision"
	typeBoolean   = "boolean"
	typeTimestamp = "timestamp"
	typeDate      = "date"
	typeText      = "text"
)

const (
	timestampLayout = "2006-01-02T15:04:05"
	dateLayout      = "2006-01-02"
)

func inferColumnTypes(header []string, rows [][]string) []string {
	types := make([]string, len(header))
	for col := range header {
		types[col] = inferColumnType(rows, col)
	}
	return types
}

func inferColumnType(rows [][]string, col int) string {
	isBigint, isDouble, isBoolean := true, true, true
	isTimestamp, isDate := true, true
	sawValue := false

	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		sawValue = true
		v := row[col]
		if isBigint {
			_, err := strconv.ParseInt(v, 10, 64)
			isBigint = err == nil
		}
		if isDouble {
			_, err := strconv.ParseFloat(v, 64)
			isDouble = err == nil
		}
		if isBoolean {
			isBoolean = v == "true" || v == "false"
		}
		if isTimestamp {
			_, err := time.Parse(timestampLayout, v)
			isTimestamp = err == nil
		}
		if isDate {
			_, err := time.Parse(dateLayout, v)
			isDate = err == nil
		}
	}

	switch {
	case !sawValue:
		return typeText
	case isBigint:
		return typeBigint
	case isDouble:
		return typeDouble
	case isBoolean:
		return typeBoolean
	case isTimestamp:
		return typeTimestamp
	case isDate:
		return typeDate
	default:
		return typeText
	}
}

// convertValue turns a raw CSV cell into the driver value for its inferred
// column type; empty cells load as NULL.
func convertValue(raw, columnType string) (any, error) {
	if raw == "" {
		return nil, nil
	}
	switch columnType {
	case typeBigint:
		return strconv.ParseInt(raw, 10, 64)
	case typeDouble:
		return strconv.ParseFloat(raw, 64)
	case typeBoolean:
		return strconv.ParseBool(raw)
	case typeTimestamp:
		t, err := time.Parse(timestampLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", raw, err)
		}
		return t, nil
	case typeDate:
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", raw, err)
		}
		return t, nil
	default:
		return raw, nil
	}
}
