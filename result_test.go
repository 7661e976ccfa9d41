package parsefetch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/parsefetch"
	pfjson "github.com/zoobzio/parsefetch/json"
)

func TestOk(t *testing.T) {
	res := parsefetch.Ok(42)

	assert.True(t, res.Success)
	assert.Equal(t, 42, res.Data)
	assert.Empty(t, res.Errors)
	assert.NoError(t, res.Err())

	got, err := res.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestFail(t *testing.T) {
	detail := parsefetch.ErrorDetail{Kind: parsefetch.KindNetwork, Message: "parseFetch failed: reset"}
	res := parsefetch.Fail[int](detail)

	assert.False(t, res.Success)
	assert.Zero(t, res.Data)
	assert.Equal(t, []parsefetch.ErrorDetail{detail}, res.Errors)

	got, err := res.Unwrap()
	assert.Zero(t, got)
	assert.EqualError(t, err, "parseFetch failed: reset")
}

func TestFailure(t *testing.T) {
	res := parsefetch.Failure[string]("too short", "not an email")

	require.Len(t, res.Errors, 2)
	for _, d := range res.Errors {
		assert.Equal(t, parsefetch.KindParse, d.Kind)
		assert.ErrorIs(t, d, parsefetch.ErrValidation)
	}
	assert.EqualError(t, res.Err(), "too short, not an email")
}

func TestResult_JSON(t *testing.T) {
	res := parsefetch.Fail[any](parsefetch.ErrorDetail{
		Kind:       parsefetch.KindHTTP,
		Message:    "ParseFetch Error:HTTP 500: Internal Server Error",
		Status:     500,
		StatusText: "Internal Server Error",
		Cause:      parsefetch.ErrHTTPStatus,
	})

	data, err := pfjson.New().Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"errors": [{
			"kind": "http",
			"message": "ParseFetch Error:HTTP 500: Internal Server Error",
			"status": 500,
			"statusText": "Internal Server Error"
		}]
	}`, string(data))
}
