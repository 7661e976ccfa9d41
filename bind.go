package parsefetch

import "fmt"

// As returns a Validator that binds the decoded body into T with c.
//
// Text bodies (XML, YAML, ...) and binary bodies (msgpack, BSON, ...) are
// handed to c as they are. Structured values from the JSON strategy are
// re-encoded as JSON first.
func As[T any](c Codec) Validator[T] {
	return ValidatorFunc[T](func(data any) (T, error) {
		var out T
		if err := bindWith(c, data, &out); err != nil {
			return out, err
		}
		return out, nil
	})
}

// bind converts a decoded value into T. Values already of type T are
// returned as they are; anything else goes through the codec registered for
// contentType, or JSON when none is.
func bind[T any](data any, contentType string) (T, error) {
	var out T
	if data == nil {
		return out, nil
	}
	if v, ok := data.(T); ok {
		return v, nil
	}
	switch dst := any(&out).(type) {
	case *string:
		if b, ok := data.([]byte); ok {
			*dst = string(b)
			return out, nil
		}
	case *[]byte:
		if s, ok := data.(string); ok {
			*dst = []byte(s)
			return out, nil
		}
	}

	c, ok := CodecFor(contentType)
	if !ok {
		c = jsonCodec{}
	}
	if err := bindWith(c, data, &out); err != nil {
		return out, err
	}
	return out, nil
}

func bindWith(c Codec, data any, dst any) error {
	var raw []byte
	switch v := data.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		encoded, err := jsonCodec{}.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: %T into %T: %w", ErrBind, data, dst, err)
		}
		raw, c = encoded, jsonCodec{}
	}

	if err := c.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s body into %T: %w", ErrBind, c.ContentType(), dst, err)
	}
	return nil
}
