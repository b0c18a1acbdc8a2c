package observability

import (
	"context"
	"testing"
	"time"
)

type countingRenderHooks struct {
	NoopRenderHooks
	starts, completes int
}

func (h *countingRenderHooks) OnRenderStart(ctx context.Context, layout string, n int) {
	h.starts++
}

func (h *countingRenderHooks) OnRenderComplete(ctx context.Context, layout string, d time.Duration, err error) {
	h.completes++
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// None of these should panic.
	ctx := context.Background()
	Render().OnRenderStart(ctx, "donut", 5)
	Render().OnRenderComplete(ctx, "donut", time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "card")
	Cache().OnCacheMiss(ctx, "card")
	Cache().OnCacheSet(ctx, "card", 1024)
	HTTP().OnRequest(ctx, "POST", "api.github.com", "/graphql")
	HTTP().OnResponse(ctx, "POST", "api.github.com", "/graphql", 200, time.Millisecond)
	HTTP().OnError(ctx, "POST", "api.github.com", "/graphql", nil)
}

func TestSetRenderHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &countingRenderHooks{}
	SetRenderHooks(h)

	Render().OnRenderStart(context.Background(), "pie", 6)
	Render().OnRenderComplete(context.Background(), "pie", time.Millisecond, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("hooks called (%d, %d) times, want (1, 1)", h.starts, h.completes)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &countingRenderHooks{}
	SetRenderHooks(h)
	SetRenderHooks(nil)

	Render().OnRenderStart(context.Background(), "compact", 6)
	if h.starts != 1 {
		t.Error("nil registration should not replace the current hooks")
	}
}

func TestReset(t *testing.T) {
	h := &countingRenderHooks{}
	SetRenderHooks(h)
	Reset()

	Render().OnRenderStart(context.Background(), "normal", 5)
	if h.starts != 0 {
		t.Error("Reset() should restore no-op hooks")
	}
}
