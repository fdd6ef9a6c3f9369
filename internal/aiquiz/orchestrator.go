package aiquiz

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/saulo-duarte/chronos-reading/internal/config"
	"golang.org/x/sync/singleflight"
)

// Result always carries displayable text. Err is the reason the fallback
// was served and is nil for live text.
type Result struct {
	Text   string
	Origin Origin
	Err    error
}

type Orchestrator struct {
	provider Provider
	params   GenerationParams
	timeout  time.Duration

	group singleflight.Group

	mu sync.RWMutex
	// inflight counts running calls per type. Book summaries for different
	// titles run side by side under the same type.
	inflight map[RequestType]int
	last     map[RequestType]RequestState
}

// NewOrchestrator accepts a nil provider, in which case every request is
// served from the fallback content.
func NewOrchestrator(provider Provider, params GenerationParams, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		params:   params,
		timeout:  timeout,
		inflight: make(map[RequestType]int, len(AllRequestTypes)),
		last:     make(map[RequestType]RequestState, len(AllRequestTypes)),
	}
}

// Generate never fails. Concurrent calls for the same request type share one
// remote call, and that call is not cancelled when ctx is; a caller that
// gives up early gets the fallback text while the shared call finishes.
func (o *Orchestrator) Generate(ctx context.Context, t RequestType, pc PromptContext) Result {
	key := string(t)
	if t == BookSummary {
		key += ":" + strings.ToLower(strings.TrimSpace(pc.BookTitle))
	}

	ch := o.group.DoChan(key, func() (any, error) {
		return o.run(context.WithoutCancel(ctx), t, pc), nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			config.WithContext(ctx).WithField("type", t).Debug("Joined in-flight AI request")
		}
		return res.Val.(Result)
	case <-ctx.Done():
		return o.fallback(t, pc, ctx.Err())
	}
}

func (o *Orchestrator) run(ctx context.Context, t RequestType, pc PromptContext) Result {
	log := config.WithContext(ctx).WithField("type", t)
	o.begin(t)

	if o.provider == nil {
		o.finish(t, StateFailed)
		return o.fallback(t, pc, ErrProviderUnavailable)
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := o.provider.Generate(ctx, BuildPrompt(t, pc), o.params)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		log.WithError(err).Warn("AI request failed, serving fallback content")
		o.finish(t, StateFailed)
		return o.fallback(t, pc, err)
	}

	log.WithField("elapsed", time.Since(start)).Info("AI request succeeded")
	o.finish(t, StateSucceeded)
	return Result{Text: text, Origin: OriginLive}
}

func (o *Orchestrator) fallback(t RequestType, pc PromptContext, cause error) Result {
	return Result{
		Text:   FallbackText(t, pc.BookTitle),
		Origin: OriginFallback,
		Err:    fmt.Errorf("%s: %w", t, cause),
	}
}

// State is PENDING while any call of type t runs, otherwise the outcome of
// the most recent call.
func (o *Orchestrator) State(t RequestType) RequestState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.inflight[t] > 0 {
		return StatePending
	}
	if s, ok := o.last[t]; ok {
		return s
	}
	return StateIdle
}

func (o *Orchestrator) begin(t RequestType) {
	o.mu.Lock()
	o.inflight[t]++
	o.mu.Unlock()
}

func (o *Orchestrator) finish(t RequestType, s RequestState) {
	o.mu.Lock()
	o.inflight[t]--
	o.last[t] = s
	o.mu.Unlock()
}
