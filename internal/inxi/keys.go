package inxi

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Raw probe keys carry ordering metadata: "000#1#1#Info". The numeric
// prefix is zero padded so a plain string sort restores document order,
// and the token after the last '#' is the field name.

// CleanKey returns the field name of a raw probe key.
func CleanKey(key string) string {
	if i := strings.LastIndexByte(key, '#'); i >= 0 {
		return key[i+1:]
	}
	return key
}

// sortedKeys returns the raw keys of an item in document order.
func sortedKeys(item map[string]any) []string {
	keys := make([]string, 0, len(item))
	for k := range item {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// emptyValue reports whether a raw value counts as absent: nil, an empty
// string, or an empty list.
func emptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}

// cleanItem strips the key prefixes of one raw item and drops absent values.
func cleanItem(item map[string]any) map[string]any {
	out := make(map[string]any, len(item))
	for k, v := range item {
		if emptyValue(v) {
			continue
		}
		out[CleanKey(k)] = v
	}
	return out
}

// firstOf returns the value of the first key present in the item, nil when
// none is.
func firstOf(item map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := item[k]; ok {
			return v
		}
	}
	return nil
}

// asString renders a raw value as text. Numbers keep the literal form they
// arrived with, nil renders empty.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// asInt coerces a raw value to int. Fractional numbers truncate toward
// zero, strings must parse as plain integers, anything else yields the
// fallback.
func asInt(v any, fallback int) int {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return i
		}
	case int:
		return t
	case float64:
		return int(t)
	}
	return fallback
}

// asFloat coerces a raw value to float64, yielding the fallback when it
// cannot be read as a number.
func asFloat(v any, fallback float64) float64 {
	switch t := v.(type) {
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	case float64:
		return t
	case int:
		return float64(t)
	}
	return fallback
}

// isNumber reports whether the raw value arrived as a JSON number.
func isNumber(v any) bool {
	switch v.(type) {
	case json.Number, float64, int:
		return true
	}
	return false
}

var (
	numberRe    = regexp.MustCompile(`[\d.]+`)
	percentRe   = regexp.MustCompile(`\(([\d.]+)%\)`)
	coreCountRe = regexp.MustCompile(`(\d+)[- ]core`)
	chargeRe    = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// firstNumber extracts the first run of digits and dots from s, returning
// the parsed value and whether one was found.
func firstNumber(s string) (float64, bool) {
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// percentIn extracts a "(NN.N%)" annotation from s, returning 0 when none
// is present.
func percentIn(s string) float64 {
	m := percentRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return f
}

// parseInt parses a plain integer string the strict way, tolerating
// surrounding whitespace only.
func parseInt(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	return i, err == nil
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
