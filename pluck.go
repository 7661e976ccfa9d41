package parsefetch

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Pluck returns a Validator that selects the value at a gjson path and
// decodes it into T. It is meant for enveloped API responses:
//
//	items, err := parsefetch.Parse(ctx, resp, parsefetch.Options[[]Item]{
//	    Validator: parsefetch.Pluck[[]Item]("data.items"),
//	})
//
// The decoded value may be a JSON structure, or a text or binary body holding
// JSON. A path that selects nothing fails with ErrPathNotFound.
func Pluck[T any](path string) Validator[T] {
	return ValidatorFunc[T](func(data any) (T, error) {
		var out T

		var raw []byte
		switch v := data.(type) {
		case []byte:
			raw = v
		case string:
			raw = []byte(v)
		default:
			encoded, err := jsonCodec{}.Marshal(v)
			if err != nil {
				return out, fmt.Errorf("%w: %w", ErrBind, err)
			}
			raw = encoded
		}

		selected := gjson.GetBytes(raw, path)
		if !selected.Exists() {
			return out, fmt.Errorf("%w: %q", ErrPathNotFound, path)
		}
		if err := (jsonCodec{}).Unmarshal([]byte(selected.Raw), &out); err != nil {
			return out, fmt.Errorf("%w: %q into %T: %w", ErrBind, path, out, err)
		}
		return out, nil
	})
}
