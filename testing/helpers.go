// Package testing provides test utilities for parsefetch.
package testing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/zoobzio/parsefetch"
)

// Response returns a 200 OK response carrying body with the given
// Content-Type. An empty contentType leaves the header unset.
func Response(contentType string, body []byte) *http.Response {
	return StatusResponse(http.StatusOK, contentType, body)
}

// StatusResponse returns a response with the given status code, Content-Type
// and body. A nil body yields http.NoBody.
func StatusResponse(code int, contentType string, body []byte) *http.Response {
	resp := &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Body:       http.NoBody,
	}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != nil {
		resp.Body = io.NopCloser(bytes.NewReader(body))
		resp.ContentLength = int64(len(body))
	}
	return resp
}

// BodyResponse returns a 200 OK response whose body is the given reader.
func BodyResponse(contentType string, body io.ReadCloser) *http.Response {
	resp := StatusResponse(http.StatusOK, contentType, nil)
	resp.Body = body
	resp.ContentLength = -1
	return resp
}

// FailingBody returns a body whose reads fail with err.
func FailingBody(err error) io.ReadCloser {
	return io.NopCloser(&failingReader{err: err})
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

// StaticFetch returns a FetchFunc that always returns resp.
func StaticFetch(resp *http.Response) parsefetch.FetchFunc {
	return func(context.Context, *http.Request) (*http.Response, error) {
		return resp, nil
	}
}

// FailingFetch returns a FetchFunc that always fails with err.
func FailingFetch(err error) parsefetch.FetchFunc {
	return func(context.Context, *http.Request) (*http.Response, error) {
		return nil, err
	}
}

// Request returns a GET request for url, panicking on a malformed url.
func Request(url string) *http.Request {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		panic(err)
	}
	return req
}
