package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
)

const malformedExcerptLen = 240

// decodePlanPayload turns the oracle's raw textual output into a decoded
// JSON object. Two explicit stages: a strict decode of the whole text,
// then a brace-delimited salvage decode that tolerates leading/trailing
// commentary the oracle should not have emitted but sometimes does.
//
// When both stages fail the error wraps ErrOracleOutputMalformed and
// carries a truncated excerpt of the raw text for diagnostics. The call
// is never retried here; the failure is surfaced to the caller.
func decodePlanPayload(raw string) (map[string]any, error) {
	if v, err := decodeStrict(raw); err == nil {
		return v, nil
	}
	if v, err := decodeSalvage(raw); err == nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrOracleOutputMalformed, excerpt(raw, malformedExcerptLen))
}

// decodeStrict decodes the whole text as one JSON object.
func decodeStrict(raw string) (map[string]any, error) {
	var v map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("decoded to null")
	}
	return v, nil
}

// decodeSalvage decodes the substring between the first '{' and the last
// '}' in the text.
func decodeSalvage(raw string) (map[string]any, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no json object delimiters found")
	}
	return decodeStrict(raw[start : end+1])
}

func excerpt(raw string, max int) string {
	s := strings.TrimSpace(raw)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
