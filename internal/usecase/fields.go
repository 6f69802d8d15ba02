package usecase

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field extraction over documents decoded with json.Decoder.UseNumber().

// stringField returns the trimmed value of a string field, or false when the
// field is missing, not a string, or empty after trimming.
func stringField(obj map[string]any, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// numberField accepts any JSON numeric value, integer or floating-point.
func numberField(obj map[string]any, key string) (decimal.Decimal, bool) {
	raw, ok := obj[key]
	if !ok {
		return decimal.Decimal{}, false
	}
	n, ok := raw.(json.Number)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// intField accepts only integer JSON numbers; 3.5 and "3" are both rejected.
func intField(obj map[string]any, key string) (int64, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}
	n, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
