// Package mapper translates between the document store's loosely-typed
// documents and the typed domain records. It fills defaults and normalizes
// value shapes but performs no validation; malformed input is rejected
// before it reaches persistence.
package mapper

import (
	"encoding/json"
	"strconv"
	"time"

	"bistro-api/docstore"
)

func str(doc docstore.Document, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

// optStr resolves an optional field to an explicit nil rather than "".
func optStr(doc docstore.Document, key string) *string {
	if s, ok := doc[key].(string); ok {
		return &s
	}
	return nil
}

func boolOr(doc docstore.Document, key string, def bool) bool {
	if b, ok := doc[key].(bool); ok {
		return b
	}
	return def
}

func intOr(doc docstore.Document, key string, def int) int {
	switch v := doc[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// moneyValue normalizes a monetary value to a decimal string regardless of
// whether it arrived numeric or already a string, without a float round-trip
// for store-sourced values.
func moneyValue(v any, def string) string {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case string:
		if n == "" {
			return def
		}
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	}
	return def
}

// timeValue normalizes a stored timestamp to a time.Time. Native instants
// pass through; anything else is parsed as a generic date value.
func timeValue(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case json.Number:
		if secs, err := t.Int64(); err == nil {
			return time.Unix(secs, 0).UTC()
		}
	}
	return time.Time{}
}
