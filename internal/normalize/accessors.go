// Package normalize converts the loosely-typed payloads of the upstream pet
// API into stable view models. Field names vary between deployments, booleans
// arrive as strings, lists hide under assorted wrapper keys. Everything here
// degrades to defaults instead of failing; a malformed record still renders.
package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Raw is one undecoded record.
type Raw = map[string]any

// An accessor is one attempt at resolving a field. Entity normalizers declare
// their resolution order as a list of accessors and take the first non-empty
// hit, so the priority of nested object vs. flat alias stays explicit.
type accessor func(Raw) (string, bool)

func field(key string) accessor {
	return func(r Raw) (string, bool) {
		s := anyToString(r[key])
		return s, s != ""
	}
}

func nestedField(outer, inner string) accessor {
	return func(r Raw) (string, bool) {
		obj, ok := r[outer].(map[string]any)
		if !ok {
			return "", false
		}
		s := anyToString(obj[inner])
		return s, s != ""
	}
}

func firstNonEmpty(r Raw, fallback string, accs ...accessor) string {
	for _, acc := range accs {
		if v, ok := acc(r); ok {
			return v
		}
	}
	return fallback
}

func anyToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// flexBool accepts the two representations the API emits: a real boolean or
// the string "true".
func flexBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}

// blockedFlag reads the blocked bit from either of its two spellings; the
// first truthy synonym wins.
func blockedFlag(r Raw) bool {
	if r == nil {
		return false
	}
	return flexBool(r["isBlock"]) || flexBool(r["isBlocked"])
}

func intValue(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// idOrNew returns the record id, synthesizing a UUID when the source omits
// one. The id is generated once per record per normalization pass so
// moderation-by-identity keeps working for the lifetime of the fetched page.
func idOrNew(r Raw) string {
	if id := anyToString(r["id"]); id != "" {
		return id
	}
	return uuid.NewString()
}

// decodeList accepts a top-level JSON array or an object wrapping the array
// under one of the known keys, tried in order.
func decodeList(payload json.RawMessage, wrapperKeys ...string) []Raw {
	if len(payload) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil
	}

	switch t := decoded.(type) {
	case []any:
		return toRawList(t)
	case map[string]any:
		for _, key := range wrapperKeys {
			if list, ok := t[key].([]any); ok {
				return toRawList(list)
			}
		}
	}
	return nil
}

func toRawList(items []any) []Raw {
	out := make([]Raw, 0, len(items))
	for _, item := range items {
		if r, ok := item.(map[string]any); ok {
			out = append(out, r)
		}
	}
	return out
}

// Total extracts the total-record counter from a list payload, falling back
// to the page length when the API omits it.
func Total(payload json.RawMessage, fallback int) int {
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fallback
	}
	for _, key := range []string{"total", "totalRecords", "totalUsers"} {
		if n, ok := intValue(decoded[key]); ok {
			return n
		}
	}
	return fallback
}

var absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)

// AbsoluteURL rewrites a relative image path against the upstream base,
// avoiding doubled slashes. Already-absolute URLs pass through.
func AbsoluteURL(base, raw string) string {
	if raw == "" {
		return ""
	}
	if absoluteURLPattern.MatchString(raw) {
		return raw
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(raw, "/")
}
