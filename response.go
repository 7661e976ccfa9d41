package parsefetch

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// Response wraps an *http.Response with single-use body readers.
// All fields of the embedded response remain accessible.
//
// Text, JSON and Bytes each consume the body. Any read after the first
// returns ErrBodyConsumed, whichever reader performed the first read.
type Response struct {
	*http.Response

	mu       sync.Mutex
	consumed bool
}

// NewResponse wraps r. A nil r yields a Response with a nil embedded response.
func NewResponse(r *http.Response) *Response {
	return &Response{Response: r}
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusText returns the reason phrase of the status line, falling back to
// the standard text for the status code.
func (r *Response) StatusText() string {
	if _, text, ok := strings.Cut(r.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(r.StatusCode)
}

// ContentType returns the declared Content-Type header, or "".
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// HasBody reports whether the response carries a readable body.
func (r *Response) HasBody() bool {
	return r.Body != nil && r.Body != http.NoBody
}

// Bytes reads and closes the body, returning it unmodified.
func (r *Response) Bytes() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.consumed {
		return nil, ErrBodyConsumed
	}
	if !r.HasBody() {
		return nil, ErrNoBody
	}
	r.consumed = true

	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// Text reads the body as UTF-8. A leading byte order mark is dropped and
// invalid sequences are replaced with U+FFFD.
func (r *Response) Text() (string, error) {
	data, err := r.Bytes()
	if err != nil {
		return "", err
	}
	text := strings.TrimPrefix(string(data), "\uFEFF")
	return strings.ToValidUTF8(text, "\uFFFD"), nil
}

// JSON reads the body and decodes it into generic JSON values
// (map[string]any, []any, string, float64, bool, nil).
func (r *Response) JSON() (any, error) {
	data, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
