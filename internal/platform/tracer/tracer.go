// Package tracer provides a lightweight tracing abstraction for the
// authentication bridge.
//
// The bridge emits one span per login/logout flow plus child spans for
// the provider and tab-session phases, without depending directly on
// OpenTelemetry APIs at call sites.
//
// Implementations:
//   - NoopTracer: for tests (zero overhead)
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// If err is non-nil, the span is marked as failed.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans for distributed tracing.
// Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	// The returned context contains the new span and should be passed
	// to child operations. The span must be ended via Span.End().
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashToken returns a SHA-256 prefix of a token for safe correlation in
// traces. Raw token values must never reach a span.
func HashToken(token string) string {
	if token == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:8])
}

// Span names used by the bridge.
const (
	SpanLoginFlow       = "authbridge.login"
	SpanLogoutFlow      = "authbridge.logout"
	SpanNativeAuth      = "authbridge.native_auth"
	SpanSessionTransfer = "authbridge.session_transfer"
	SpanTabSession      = "authbridge.tab_session"
)

// Attribute keys used by the bridge.
const (
	AttrFlowID          = "flow.id"
	AttrFlowSuccess     = "flow.success"
	AttrTabCount        = "tab.count"
	AttrCompletionCause = "tab.completion_cause"
	AttrErrorCode       = "error.code"
)
