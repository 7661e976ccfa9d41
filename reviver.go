package parsefetch

import (
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Reviver post-processes decoded JSON values, innermost first. key is the
// object key, the decimal array index, or "" for the root value. The returned
// value replaces the original.
type Reviver func(key string, value any) any

// omitted is the dynamic type of Omit.
type omitted struct{}

// Omit, returned from a Reviver, removes the property from its parent object.
// Array elements become nil. A root value of Omit decodes to nil.
var Omit any = omitted{}

// revive applies reviver to v. The value is re-encoded and decoded again
// first, so the reviver always walks a private copy and never sees state
// shared with the body reader.
func revive(v any, reviver Reviver) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fresh any
	if err := json.Unmarshal(raw, &fresh); err != nil {
		return nil, err
	}

	out := walk("", fresh, reviver)
	if _, drop := out.(omitted); drop {
		return nil, nil
	}
	return out, nil
}

func walk(key string, v any, reviver Reviver) any {
	switch node := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			next := walk(k, node[k], reviver)
			if _, drop := next.(omitted); drop {
				delete(node, k)
				continue
			}
			node[k] = next
		}
	case []any:
		for i := range node {
			next := walk(strconv.Itoa(i), node[i], reviver)
			if _, drop := next.(omitted); drop {
				next = nil
			}
			node[i] = next
		}
	}
	return reviver(key, v)
}
