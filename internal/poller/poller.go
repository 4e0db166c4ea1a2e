package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"bscout/internal/metrics"
)

type State string

const (
	StateIdle         State = "idle"
	StatePolling      State = "polling"
	StateReconnecting State = "reconnecting"
)

var ErrMaxReconnects = fmt.Errorf("max reconnect attempts reached")

// Poller owns the cursor: it repeatedly queries the chain tip and drives
// the block handler over every height the cursor has not passed yet,
// strictly ascending. A single goroutine runs the loop, so the cursor
// has exactly one writer.
type Poller struct {
	logs    *zap.SugaredLogger
	chain   ChainSource
	handler BlockHandler
	cursors CursorStore
	metrics *metrics.IndexerMetrics

	pollInterval   time.Duration
	maxReconnects  int
	reconnectDelay time.Duration

	mu       sync.Mutex
	state    State
	cursor   uint64
	attempts int

	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewPoller(
	logger *zap.SugaredLogger,
	chain ChainSource,
	handler BlockHandler,
	cursors CursorStore,
	indexerMetrics *metrics.IndexerMetrics,
	pollInterval time.Duration,
	maxReconnects int,
	reconnectDelay time.Duration,
) *Poller {
	return &Poller{
		logs:           logger,
		chain:          chain,
		handler:        handler,
		cursors:        cursors,
		metrics:        indexerMetrics,
		pollInterval:   pollInterval,
		maxReconnects:  maxReconnects,
		reconnectDelay: reconnectDelay,
		state:          StateIdle,
		stopCh:         make(chan struct{}),
	}
}

// Run blocks until Stop is called, the context is cancelled, or the
// reconnect budget is exhausted. Only the last case returns an error.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.initCursor(ctx); err != nil {
		return fmt.Errorf("initialize cursor: %w", err)
	}

	p.setState(StatePolling)
	p.logs.Infow("poller started", "from_block", p.Cursor()+1, "interval", p.pollInterval)

	// the first poll runs immediately; the interval paces the rest
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logs.Infow("poller stopped", "reason", "context cancelled", "cursor", p.Cursor())
			return nil
		case <-p.stopCh:
			p.logs.Infow("poller stopped", "cursor", p.Cursor())
			return nil
		case <-timer.C:
		}

		if err := p.tick(ctx); err != nil {
			if fatal := p.reconnect(ctx, err); fatal != nil {
				return fatal
			}
			if p.stopped(ctx) {
				return nil
			}
			p.setState(StatePolling)
			// reconnect already waited out the delay, so retry right away
			timer.Reset(0)
			continue
		}

		p.resetAttempts()
		timer.Reset(p.pollInterval)
	}
}

// Stop ends the loop after any in-flight block completes. It is the only
// external control; there is no per-block cancellation.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
	})
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Cursor returns the highest fully processed block height.
func (p *Poller) Cursor() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// initCursor prefers the persisted resume point; on a cold start it
// anchors to tip-1 so processing begins at the next produced block.
func (p *Poller) initCursor(ctx context.Context) error {
	stored, found, err := p.cursors.LoadCursor(ctx)
	if err != nil {
		return err
	}
	if found {
		p.setCursor(stored)
		p.logs.Infow("resuming from stored cursor", "cursor", stored)
		return nil
	}

	tip, err := p.chain.ChainTip(ctx)
	if err != nil {
		return err
	}

	p.setCursor(tip - 1)
	if err := p.cursors.StoreCursor(ctx, tip-1); err != nil {
		p.logs.Errorw("failed to store initial cursor", "error", err, "cursor", tip-1)
	}

	return nil
}

// tick drains every unprocessed height up to the current tip. The cursor
// advances by exactly one per completed block, so a failure leaves the
// failing block to be retried, never skipped.
func (p *Poller) tick(ctx context.Context) error {
	tip, err := p.chain.ChainTip(ctx)
	if err != nil {
		return fmt.Errorf("query chain tip: %w", err)
	}

	p.metrics.SetChainTip(tip)

	for height := p.Cursor() + 1; height <= tip; height++ {
		if p.stopped(ctx) {
			return nil
		}

		started := time.Now()

		block, err := p.chain.FetchBlock(ctx, height)
		if err != nil {
			return fmt.Errorf("fetch block %d: %w", height, err)
		}
		if block == nil {
			// not indexed by the remote node yet; retried next tick
			p.logs.Infow("block not available yet", "block", height)
			return nil
		}

		if err := p.handler.ProcessBlock(ctx, block); err != nil {
			return fmt.Errorf("process block %d: %w", height, err)
		}

		p.setCursor(height)
		if err := p.cursors.StoreCursor(ctx, height); err != nil {
			// the in-memory cursor stays correct; a stale persisted
			// cursor only causes idempotent re-processing on restart
			p.logs.Errorw("failed to store cursor", "error", err, "cursor", height)
		}

		p.metrics.BlockProcessed(height, time.Since(started))
	}

	return nil
}

// reconnect counts the failure and waits out the delay. Returns non-nil
// once the attempt budget is exhausted.
func (p *Poller) reconnect(ctx context.Context, cause error) error {
	p.setState(StateReconnecting)
	p.metrics.Reconnect()

	p.mu.Lock()
	p.attempts++
	attempts := p.attempts
	p.mu.Unlock()

	if attempts > p.maxReconnects {
		p.logs.Errorw("max reconnect attempts reached", "error", cause, "attempts", attempts-1)
		return fmt.Errorf("%w after %d attempts: %v", ErrMaxReconnects, attempts-1, cause)
	}

	p.logs.Warnw("poll failed, reconnecting",
		"error", cause,
		"attempt", attempts,
		"max_attempts", p.maxReconnects,
		"delay", p.reconnectDelay)

	select {
	case <-ctx.Done():
	case <-p.stopCh:
	case <-time.After(p.reconnectDelay):
	}

	return nil
}

func (p *Poller) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-p.stopCh:
		return true
	default:
		return false
	}
}

func (p *Poller) setState(state State) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

func (p *Poller) setCursor(height uint64) {
	p.mu.Lock()
	p.cursor = height
	p.mu.Unlock()
}

func (p *Poller) resetAttempts() {
	p.mu.Lock()
	p.attempts = 0
	p.mu.Unlock()
}
