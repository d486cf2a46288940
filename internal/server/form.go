package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/desertthunder/catalog/internal/models"
	"github.com/desertthunder/catalog/internal/shared"
)

// kind is how a request field is decoded.
type kind int

const (
	text        kind = iota // JSON string; numbers keep their literal text
	integer                 // JSON number or numeric string, integral
	decimal                 // JSON number or numeric string
	numericText             // integer-valued input stored as text (postal codes)
	seconds                 // decimal seconds stored as integer milliseconds
)

// field maps accepted input keys to a storage column. The first key is the documented camelCase name.
type field struct {
	keys   []string
	column string
	kind   kind
}

// form is a decoded JSON request body, keyed by input name.
type form map[string]json.RawMessage

// bindForm decodes the request body. An empty body yields an empty form.
func bindForm(c *gin.Context) (form, error) {
	f := form{}
	if c.Request.Body == nil {
		return f, nil
	}
	if err := c.ShouldBindJSON(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return form{}, nil
		}
		return nil, shared.NewValidationError("", "Invalid JSON body")
	}
	return f, nil
}

// changes decodes every present, truthy field in table order.
//
// Null, empty strings and zero numbers are skipped, so the result only holds values the caller meant to set.
func (f form) changes(fields []field) (models.Changes, error) {
	var out models.Changes
	for _, fd := range fields {
		v, ok, err := f.value(fd)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Set(fd.column, v)
		}
	}
	return out, nil
}

// value decodes the first key of fd present in f.
func (f form) value(fd field) (any, bool, error) {
	for _, key := range fd.keys {
		raw, ok := f[key]
		if !ok {
			continue
		}
		return decodeValue(key, raw, fd.kind)
	}
	return nil, false, nil
}

func decodeValue(key string, raw json.RawMessage, k kind) (any, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" || string(raw) == "false" {
		return nil, false, nil
	}

	literal, quoted := scalar(raw)
	if literal == "" {
		return nil, false, nil
	}
	if !quoted && !isNumber(literal) {
		return nil, false, shared.NewValidationError(key, "Invalid input: '%s' has an unsupported type", key)
	}

	switch k {
	case integer:
		n, err := parseInteger(literal)
		if err != nil {
			return nil, false, numericRequired(key)
		}
		return n, n != 0, nil
	case decimal:
		n, err := strconv.ParseFloat(literal, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, false, numericRequired(key)
		}
		return n, n != 0, nil
	case seconds:
		n, err := strconv.ParseFloat(literal, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, false, numericRequired(key)
		}
		rounded := math.Round(n * 1000)
		if !inInt64Range(rounded) {
			return nil, false, numericRequired(key)
		}
		ms := int64(rounded)
		return ms, ms != 0, nil
	case numericText:
		if _, err := parseInteger(literal); err != nil {
			return nil, false, numericRequired(key)
		}
		return literal, true, nil
	default:
		return literal, true, nil
	}
}

// scalar returns the trimmed text of a JSON string or the literal of any other token.
func scalar(raw json.RawMessage) (string, bool) {
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", true
		}
		return strings.TrimSpace(s), true
	}
	return string(raw), false
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// int64Bound is 2^63, the first float64 past the int64 range.
const int64Bound = 1 << 63

func inInt64Range(f float64) bool {
	return f < int64Bound && f >= -int64Bound
}

func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || !inInt64Range(f) {
		return 0, strconv.ErrSyntax
	}
	return int64(f), nil
}

func numericRequired(key string) error {
	return shared.NewValidationError(key, "Invalid input: numeric value required for '%s'", key)
}

// ids decodes a non-empty array of positive integer ids stored under one of keys.
func (f form) ids(keys ...string) ([]int64, error) {
	var raw json.RawMessage
	for _, key := range keys {
		if v, ok := f[key]; ok {
			raw = v
			break
		}
	}

	var items []json.RawMessage
	if raw == nil || json.Unmarshal(raw, &items) != nil || len(items) == 0 {
		return nil, shared.NewValidationError(keys[0], "%s must be a non-empty array", keys[0])
	}

	out := make([]int64, 0, len(items))
	for _, item := range items {
		v, ok, err := decodeValue(keys[0], item, integer)
		if err != nil {
			return nil, err
		}
		if !ok || v.(int64) <= 0 {
			return nil, shared.NewValidationError(keys[0], "%s must contain positive integer ids", keys[0])
		}
		out = append(out, v.(int64))
	}
	return out, nil
}

// values is a column-keyed view over decoded changes, used to build entities for insert.
type values map[string]any

func valuesOf(changes models.Changes) values {
	v := make(values, len(changes))
	for _, ch := range changes {
		v[ch.Column] = ch.Value
	}
	return v
}

func (v values) str(col string) string {
	s, _ := v[col].(string)
	return s
}

func (v values) strPtr(col string) *string {
	if s, ok := v[col].(string); ok {
		return &s
	}
	return nil
}

func (v values) int(col string) int64 {
	n, _ := v[col].(int64)
	return n
}

func (v values) intPtr(col string) *int64 {
	if n, ok := v[col].(int64); ok {
		return &n
	}
	return nil
}

func (v values) float(col string) float64 {
	n, _ := v[col].(float64)
	return n
}

func (v values) has(col string) bool {
	_, ok := v[col]
	return ok
}
