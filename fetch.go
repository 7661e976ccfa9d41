package parsefetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FetchFunc performs one HTTP round trip.
type FetchFunc func(ctx context.Context, req *http.Request) (*http.Response, error)

// FromClient adapts client into a FetchFunc. The request is sent with ctx.
// If client is nil, http.DefaultClient is used.
func FromClient(client *http.Client) FetchFunc {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context, req *http.Request) (*http.Response, error) {
		return client.Do(req.WithContext(ctx))
	}
}

// Decorator wraps a FetchFunc so that each call can be parsed directly.
//
// Decorators are safe for concurrent use. Configure them before the first
// call.
type Decorator struct {
	fetch FetchFunc

	mu    sync.RWMutex
	newID func() string
}

// Decorate wraps fetch. It panics if fetch is nil.
func Decorate(fetch FetchFunc) *Decorator {
	if fetch == nil {
		panic("parsefetch.Decorate: fetch must not be nil")
	}
	return &Decorator{fetch: fetch, newID: uuid.NewString}
}

// SetIDGenerator replaces the call ID generator (UUIDs by default).
// Returns the decorator for chaining.
func (d *Decorator) SetIDGenerator(fn func() string) *Decorator {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fn == nil {
		fn = uuid.NewString
	}
	d.newID = fn
	return d
}

// Fetch starts req and returns immediately. Network failures are returned
// unchanged by Await and Parse.
func (d *Decorator) Fetch(ctx context.Context, req *http.Request) *Pending {
	return d.start(ctx, req, false)
}

// SafeFetch starts req and returns immediately. Network failures are
// reported as an *Error holding one network ErrorDetail.
func (d *Decorator) SafeFetch(ctx context.Context, req *http.Request) *Pending {
	return d.start(ctx, req, true)
}

func (d *Decorator) start(ctx context.Context, req *http.Request, safe bool) *Pending {
	d.mu.RLock()
	id := d.newID()
	d.mu.RUnlock()

	p := &Pending{
		id:   id,
		ctx:  ctx,
		safe: safe,
		done: make(chan struct{}),
	}

	var method, url string
	if req != nil {
		method = req.Method
		if req.URL != nil {
			url = req.URL.String()
		}
	}
	emitFetchStart(ctx, id, method, url)

	go func() {
		defer close(p.done)

		start := time.Now()
		resp, err := d.call(ctx, req)
		if err == nil && resp == nil {
			err = ErrNilResponse
		}

		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		emitFetchComplete(ctx, id, status, time.Since(start), err)

		if err != nil {
			if resp != nil && resp.Body != nil {
				_ = resp.Body.Close()
			}
			p.err = err
			return
		}
		p.resp = &EnhancedResponse{Response: NewResponse(resp), ctx: ctx, callID: id}
	}()

	return p
}

// call invokes the fetch primitive, converting a panic into an error.
func (d *Decorator) call(ctx context.Context, req *http.Request) (resp *http.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("fetch panicked: %w", panicError(r))
		}
	}()
	return d.fetch(ctx, req)
}

// Pending is a network call started by a Decorator.
type Pending struct {
	id   string
	ctx  context.Context
	safe bool

	done chan struct{}
	resp *EnhancedResponse
	err  error
}

// ID returns the call ID carried by this call's events.
func (p *Pending) ID() string {
	return p.id
}

// Done is closed once the network call has returned.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the network call returns.
func (p *Pending) Await() (*EnhancedResponse, error) {
	<-p.done
	if p.err != nil {
		if p.safe {
			return nil, &Error{Errors: []ErrorDetail{networkDetail(p.err)}}
		}
		return nil, p.err
	}
	return p.resp, nil
}

// Parse waits for the response and decodes it into an untyped value.
// Use ParsePending for a typed result.
func (p *Pending) Parse(opts Options[any]) (any, error) {
	return ParsePending(p, opts)
}

// SafeParse waits for the response and decodes it into an untyped Result.
// Use SafeParsePending for a typed result.
func (p *Pending) SafeParse(opts Options[any]) Result[any] {
	return SafeParsePending(p, opts)
}

// ParsePending waits for p and parses its response.
func ParsePending[T any](p *Pending, opts Options[T]) (T, error) {
	resp, err := p.Await()
	if err != nil {
		var zero T
		return zero, err
	}
	return parseResponse(resp.ctx, resp.callID, resp.Response, opts).Unwrap()
}

// SafeParsePending waits for p and parses its response. Network failures
// are reported in the Result for both Fetch and SafeFetch calls.
func SafeParsePending[T any](p *Pending, opts Options[T]) Result[T] {
	resp, err := p.Await()
	if err != nil {
		var pfErr *Error
		if errors.As(err, &pfErr) {
			return Fail[T](pfErr.Errors...)
		}
		return Fail[T](networkDetail(err))
	}
	return parseResponse(resp.ctx, resp.callID, resp.Response, opts)
}

// EnhancedResponse is a fetched response carrying a bound Parse operation.
// All fields and methods of the underlying Response remain accessible.
type EnhancedResponse struct {
	*Response

	ctx    context.Context
	callID string
}

// Parse decodes the response body. It performs no network I/O.
func (r *EnhancedResponse) Parse(opts Options[any]) (any, error) {
	return r.SafeParse(opts).Unwrap()
}

// SafeParse decodes the response body into a Result.
func (r *EnhancedResponse) SafeParse(opts Options[any]) Result[any] {
	return parseResponse(r.ctx, r.callID, r.Response, opts)
}
