package alias

import (
	"strconv"
	"strings"
)

var nestKeys = []string{"payload", "meta", "settings"}

// Resolve returns the first usable value for an ordered alias list,
// trying the top level before the known sub-objects.
func Resolve(rec map[string]any, aliases []string, def string) string {
	for _, key := range aliases {
		if s, ok := usable(rec[key]); ok {
			return s
		}
	}
	for _, nest := range nestKeys {
		sub, ok := rec[nest].(map[string]any)
		if !ok {
			continue
		}
		for _, key := range aliases {
			if s, ok := usable(sub[key]); ok {
				return s
			}
		}
	}
	return def
}

// ResolveBool accepts real bools, "true"/"false" strings and 0/1 numbers.
func ResolveBool(rec map[string]any, aliases []string) (bool, bool) {
	if v, ok := Lookup(rec, aliases); ok {
		return truthy(v)
	}
	return false, false
}

// ResolveStrings accepts a JSON array of strings or a bare single string.
func ResolveStrings(rec map[string]any, aliases []string) []string {
	v, ok := Lookup(rec, aliases)
	if !ok {
		return nil
	}
	switch vv := v.(type) {
	case []any:
		var out []string
		for _, e := range vv {
			if s, ok := usable(e); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		var out []string
		for _, s := range vv {
			if s, ok := usable(s); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		if s, ok := usable(v); ok {
			return []string{s}
		}
	}
	return nil
}

// Lookup reports presence without judging content, so callers can tell
// an absent field from an empty one.
func Lookup(rec map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, present := rec[key]; present && v != nil {
			return v, true
		}
	}
	for _, nest := range nestKeys {
		sub, ok := rec[nest].(map[string]any)
		if !ok {
			continue
		}
		for _, key := range aliases {
			if v, present := sub[key]; present && v != nil {
				return v, true
			}
		}
	}
	return nil, false
}

func usable(v any) (string, bool) {
	switch vv := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(vv)
		if s == "" || s == "null" || s == "undefined" {
			return "", false
		}
		return s, true
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64), true
	case int:
		return strconv.Itoa(vv), true
	case int64:
		return strconv.FormatInt(vv, 10), true
	case bool:
		return strconv.FormatBool(vv), true
	default:
		return "", false
	}
}

func truthy(v any) (bool, bool) {
	switch vv := v.(type) {
	case bool:
		return vv, true
	case string:
		s := strings.ToLower(strings.TrimSpace(vv))
		switch s {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
		return false, false
	case float64:
		return vv != 0, true
	case int:
		return vv != 0, true
	default:
		return false, false
	}
}
