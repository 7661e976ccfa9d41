package parsefetch

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for fetch and parse events.
var (
	SignalFetchStart    = capitan.NewSignal("parsefetch.fetch.start", "Network call beginning")
	SignalFetchComplete = capitan.NewSignal("parsefetch.fetch.complete", "Network call finished")
	SignalParseStart    = capitan.NewSignal("parsefetch.parse.start", "Body decode beginning")
	SignalParseComplete = capitan.NewSignal("parsefetch.parse.complete", "Parse finished")
)

// Keys for typed event data.
var (
	KeyCallID      = capitan.NewStringKey("call_id")
	KeyMethod      = capitan.NewStringKey("method")
	KeyURL         = capitan.NewStringKey("url")
	KeyStatus      = capitan.NewIntKey("status")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyStrategy    = capitan.NewStringKey("strategy")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyErrorCount  = capitan.NewIntKey("error_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitFetchStart emits an event when a decorated call is started.
func emitFetchStart(ctx context.Context, callID, method, url string) {
	capitan.Emit(ctx, SignalFetchStart,
		KeyCallID.Field(callID),
		KeyMethod.Field(method),
		KeyURL.Field(url),
	)
}

// emitFetchComplete emits an event when the fetch primitive returns.
func emitFetchComplete(ctx context.Context, callID string, status int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCallID.Field(callID),
		KeyStatus.Field(status),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalFetchComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalFetchComplete, fields...)
	}
}

// emitParseStart emits an event once a strategy has been selected.
func emitParseStart(ctx context.Context, callID, contentType string, family Family, typeName string) {
	capitan.Emit(ctx, SignalParseStart,
		KeyCallID.Field(callID),
		KeyContentType.Field(contentType),
		KeyStrategy.Field(string(family)),
		KeyTypeName.Field(typeName),
	)
}

// emitParseComplete emits an event when a parse produced its Result.
func emitParseComplete(ctx context.Context, callID, typeName string, duration time.Duration, errCount int, err error) {
	fields := []capitan.Field{
		KeyCallID.Field(callID),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyErrorCount.Field(errCount),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalParseComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalParseComplete, fields...)
	}
}
