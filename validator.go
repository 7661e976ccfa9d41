package parsefetch

import "fmt"

// Validator checks or transforms a decoded body, reporting rejection as an
// error. Adapters for schema libraries implement this interface.
type Validator[T any] interface {
	Validate(data any) (T, error)
}

// SafeValidator reports rejection as a failed Result instead of an error.
// When a validator implements SafeValidator, SafeValidate is used and its
// Result is passed through unchanged.
type SafeValidator[T any] interface {
	Validator[T]
	SafeValidate(data any) Result[T]
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc[T any] func(data any) (T, error)

// Validate calls f(data).
func (f ValidatorFunc[T]) Validate(data any) (T, error) {
	return f(data)
}

// SafeValidatorFunc adapts a function to SafeValidator.
type SafeValidatorFunc[T any] func(data any) Result[T]

// SafeValidate calls f(data).
func (f SafeValidatorFunc[T]) SafeValidate(data any) Result[T] {
	return f(data)
}

// Validate calls f(data) and unwraps the Result.
func (f SafeValidatorFunc[T]) Validate(data any) (T, error) {
	return f(data).Unwrap()
}

// applyValidator runs v on a successfully decoded value. Errors and panics
// from a throwing validator become a single parse detail.
func applyValidator[T any](v Validator[T], data any) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Fail[T](validationDetail(panicError(r)))
		}
	}()

	if sv, ok := v.(SafeValidator[T]); ok {
		return sv.SafeValidate(data)
	}

	out, err := v.Validate(data)
	if err != nil {
		return Fail[T](validationDetail(err))
	}
	return Ok(out)
}

func validationDetail(err error) ErrorDetail {
	d := parseDetail(err)
	d.Cause = fmt.Errorf("%w: %w", ErrValidation, err)
	return d
}
