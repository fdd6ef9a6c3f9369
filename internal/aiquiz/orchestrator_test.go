package aiquiz

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	text    string
	err     error
	calls   atomic.Int32
	prompts chan string

	started chan struct{}
	release chan struct{}
	ctxErr  chan error
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, _ GenerationParams) (string, error) {
	p.calls.Add(1)
	if p.prompts != nil {
		p.prompts <- prompt
	}
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.release != nil {
		<-p.release
	}
	if p.ctxErr != nil {
		p.ctxErr <- ctx.Err()
	}
	return p.text, p.err
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ string, _ GenerationParams) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// titleGate holds each book summary until the gate for its title is closed.
type titleGate struct {
	started chan string
	gates   map[string]chan struct{}
}

func (p *titleGate) Generate(_ context.Context, prompt string, _ GenerationParams) (string, error) {
	for title, gate := range p.gates {
		if strings.Contains(prompt, "Book: "+title) {
			p.started <- title
			<-gate
			return "Summary of " + title, nil
		}
	}
	return "", errors.New("unexpected prompt")
}

var params = GenerationParams{Temperature: 0.7, MaxOutputTokens: 500}

func TestGenerateLive(t *testing.T) {
	p := &fakeProvider{text: "Insight: read more", prompts: make(chan string, 1)}
	o := NewOrchestrator(p, params, time.Second)

	assert.Equal(t, StateIdle, o.State(ReadingInsights))
	res := o.Generate(context.Background(), ReadingInsights, PromptContext{})

	assert.Equal(t, OriginLive, res.Origin)
	assert.Equal(t, "Insight: read more", res.Text)
	assert.NoError(t, res.Err)
	assert.Equal(t, StateSucceeded, o.State(ReadingInsights))
	assert.Contains(t, <-p.prompts, "Reading Statistics:")
}

func TestGenerateFallback(t *testing.T) {
	cases := map[string]Provider{
		"Error":      &fakeProvider{err: errors.New("quota exceeded")},
		"EmptyText":  &fakeProvider{text: "  \n"},
		"NoProvider": nil,
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			o := NewOrchestrator(p, params, time.Second)
			for _, rt := range AllRequestTypes {
				res := o.Generate(context.Background(), rt, PromptContext{})
				assert.Equal(t, OriginFallback, res.Origin)
				assert.Equal(t, FallbackText(rt, ""), res.Text)
				assert.NotEmpty(t, res.Text)
				assert.Error(t, res.Err)
				assert.Equal(t, StateFailed, o.State(rt))
			}
		})
	}
}

func TestGenerateRecommendationsFallbackEndToEnd(t *testing.T) {
	o := NewOrchestrator(&fakeProvider{err: errors.New("network down")}, params, time.Second)

	res := o.Generate(context.Background(), BookRecommendations, PromptContext{})
	recs := ParseRecommendations(res.Text)

	require.Len(t, recs, 3)
	assert.Equal(t, "Dune", recs[0].Title)
	assert.Equal(t, "Project Hail Mary", recs[1].Title)
	assert.Equal(t, "The Hobbit", recs[2].Title)
}

func TestGenerateTimeout(t *testing.T) {
	o := NewOrchestrator(blockingProvider{}, params, 20*time.Millisecond)

	res := o.Generate(context.Background(), VocabularyAnalysis, PromptContext{})
	assert.Equal(t, OriginFallback, res.Origin)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Equal(t, StateFailed, o.State(VocabularyAnalysis))
}

func TestGenerateJoinsPendingRequest(t *testing.T) {
	p := &fakeProvider{
		text:    "Dune by Frank Herbert: sand",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	o := NewOrchestrator(p, params, time.Second)

	const callers = 5
	results := make([]Result, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = o.Generate(context.Background(), BookRecommendations, PromptContext{})
	}()
	<-p.started
	assert.Equal(t, StatePending, o.State(BookRecommendations))

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = o.Generate(context.Background(), BookRecommendations, PromptContext{})
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(p.release)
	wg.Wait()

	assert.Equal(t, int32(1), p.calls.Load())
	for _, r := range results {
		assert.Equal(t, OriginLive, r.Origin)
		assert.Equal(t, "Dune by Frank Herbert: sand", r.Text)
	}
	assert.Equal(t, StateSucceeded, o.State(BookRecommendations))
}

func TestGenerateSummariesForDifferentTitlesDoNotJoin(t *testing.T) {
	p := &fakeProvider{text: "A summary."}
	o := NewOrchestrator(p, params, time.Second)

	o.Generate(context.Background(), BookSummary, PromptContext{BookTitle: "Dune"})
	o.Generate(context.Background(), BookSummary, PromptContext{BookTitle: "1984"})
	assert.Equal(t, int32(2), p.calls.Load())
}

func TestGenerateIsNotCancelledByCaller(t *testing.T) {
	p := &fakeProvider{
		text:    "Insight: finished anyway",
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		ctxErr:  make(chan error, 1),
	}
	o := NewOrchestrator(p, params, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan Result, 1)
	go func() { done <- o.Generate(ctx, ReadingInsights, PromptContext{}) }()

	<-p.started
	cancel()

	res := <-done
	assert.Equal(t, OriginFallback, res.Origin)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, StatePending, o.State(ReadingInsights))

	close(p.release)
	assert.NoError(t, <-p.ctxErr)
	assert.Eventually(t, func() bool {
		return o.State(ReadingInsights) == StateSucceeded
	}, time.Second, 5*time.Millisecond)
}

func TestStatePendingWhileAnyTitleIsInFlight(t *testing.T) {
	p := &titleGate{
		started: make(chan string, 2),
		gates:   map[string]chan struct{}{"Dune": make(chan struct{}), "Emma": make(chan struct{})},
	}
	o := NewOrchestrator(p, params, time.Second)

	dune := make(chan Result, 1)
	emma := make(chan Result, 1)
	go func() { dune <- o.Generate(context.Background(), BookSummary, PromptContext{BookTitle: "Dune"}) }()
	go func() { emma <- o.Generate(context.Background(), BookSummary, PromptContext{BookTitle: "Emma"}) }()
	<-p.started
	<-p.started

	close(p.gates["Dune"])
	res := <-dune
	assert.Equal(t, OriginLive, res.Origin)
	assert.Equal(t, "Summary of Dune", res.Text)
	assert.Equal(t, StatePending, o.State(BookSummary))

	close(p.gates["Emma"])
	res = <-emma
	assert.Equal(t, "Summary of Emma", res.Text)
	assert.Equal(t, StateSucceeded, o.State(BookSummary))
}
