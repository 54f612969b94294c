package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// parsePathIDParam accepts any signed decimal integer. Callers treat ids
// below 1 as rows that cannot exist.
func parsePathIDParam(raw string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input syntax for type integer: %q", raw)
	}
	return parsed, nil
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// textValue converts a JSON scalar to the text stored in a varchar column.
// Strings are unquoted; numbers, booleans and nested values keep their JSON
// spelling.
func textValue(raw json.RawMessage) (*string, error) {
	if isNullJSON(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s, nil
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, err
	}
	text := compact.String()
	return &text, nil
}

// boolValue converts a JSON value to a boolean using the literals a SQL
// boolean column accepts ('t', 'yes', 'on', '1', ...).
func boolValue(raw json.RawMessage) (*bool, error) {
	if isNullJSON(raw) {
		return nil, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return &b, nil
	}

	literal := string(bytes.TrimSpace(raw))
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		literal = s
	}
	switch strings.ToLower(strings.TrimSpace(literal)) {
	case "t", "true", "y", "yes", "on", "1":
		b = true
	case "f", "false", "n", "no", "off", "0":
		b = false
	default:
		return nil, fmt.Errorf("invalid input syntax for type boolean: %q", literal)
	}
	return &b, nil
}
