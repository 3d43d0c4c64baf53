// Package jsontext formats and extracts values from opaque JSON payloads.
//
// The ingestion API returns bodies that carbonctl re-prints verbatim; this
// package pretty-prints them when they are valid JSON and passes them through
// untouched otherwise, and pulls single numeric fields out with a default for
// every failure mode (missing field, malformed document, empty body).
package jsontext

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Pretty returns the indented form of body if it is valid JSON, or the raw
// input unchanged if it is not. Empty input yields an empty string.
func Pretty(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}
	if !json.Valid(trimmed) {
		return strings.TrimRight(string(body), "\n")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return strings.TrimRight(string(body), "\n")
	}
	return buf.String()
}

// IntField returns the integer value at path in body, or def when the body is
// not valid JSON, the path is absent, or the value is not a number. Paths use
// gjson syntax, e.g. "aggregate_metrics.total_records".
func IntField(body []byte, path string, def int64) int64 {
	if !gjson.ValidBytes(body) {
		return def
	}
	result := gjson.GetBytes(body, path)
	if !result.Exists() || result.Type != gjson.Number {
		return def
	}
	return result.Int()
}
