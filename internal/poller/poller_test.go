package poller_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"bscout/internal/metrics"
	"bscout/internal/poller"
	"bscout/internal/poller/fake"
)

var _ = Describe("Poller", func() {
	var (
		poll    *poller.Poller
		chain   *fake.ChainSource
		handler *fake.BlockHandler
		cursors *fake.CursorStore
		ctx     context.Context
		cancel  context.CancelFunc
		runErr  chan error
	)

	blockAt := func(height uint64) *types.Block {
		return types.NewBlockWithHeader(&types.Header{Number: new(big.Int).SetUint64(height)})
	}

	startPollerAt := func(pollInterval time.Duration, maxReconnects int) {
		poll = poller.NewPoller(
			zap.NewNop().Sugar(),
			chain,
			handler,
			cursors,
			metrics.NewIndexerMetrics(prometheus.NewRegistry()),
			pollInterval,
			maxReconnects,
			time.Millisecond,
		)
		runErr = make(chan error, 1)
		go func() {
			runErr <- poll.Run(ctx)
		}()
	}

	startPoller := func(maxReconnects int) {
		startPollerAt(time.Millisecond, maxReconnects)
	}

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		chain = new(fake.ChainSource)
		handler = new(fake.BlockHandler)
		cursors = new(fake.CursorStore)

		chain.FetchBlockCalls(func(_ context.Context, height uint64) (*types.Block, error) {
			return blockAt(height), nil
		})
	})

	AfterEach(func() {
		cancel()
		Eventually(runErr).Should(Receive())
	})

	When("no cursor has been persisted", func() {
		BeforeEach(func() {
			cursors.LoadCursorReturns(0, false, nil)
			chain.ChainTipReturns(100, nil)
		})

		It("anchors one block behind the tip and processes the next block", func() {
			startPoller(5)

			Eventually(handler.ProcessBlockCallCount).Should(Equal(1))
			_, block := handler.ProcessBlockArgsForCall(0)
			Expect(block.NumberU64()).To(Equal(uint64(100)))

			_, stored := cursors.StoreCursorArgsForCall(0)
			Expect(stored).To(Equal(uint64(99)))
			Eventually(poll.Cursor).Should(Equal(uint64(100)))
		})
	})

	When("a cursor has been persisted", func() {
		BeforeEach(func() {
			cursors.LoadCursorReturns(57, true, nil)
			chain.ChainTipReturns(60, nil)
		})

		It("resumes after the stored block and drains heights in ascending order", func() {
			startPoller(5)

			Eventually(handler.ProcessBlockCallCount).Should(Equal(3))
			for i, want := range []uint64{58, 59, 60} {
				_, block := handler.ProcessBlockArgsForCall(i)
				Expect(block.NumberU64()).To(Equal(want))
			}
			Eventually(poll.Cursor).Should(Equal(uint64(60)))
		})

		It("persists the cursor after every processed block", func() {
			startPoller(5)

			Eventually(cursors.StoreCursorCallCount).Should(Equal(3))
			_, last := cursors.StoreCursorArgsForCall(2)
			Expect(last).To(Equal(uint64(60)))
		})
	})

	When("the node has not indexed a block yet", func() {
		BeforeEach(func() {
			cursors.LoadCursorReturns(9, true, nil)
			chain.ChainTipReturns(10, nil)
			chain.FetchBlockCalls(nil)
			chain.FetchBlockReturnsOnCall(0, nil, nil)
			chain.FetchBlockReturns(blockAt(10), nil)
		})

		It("retries the same height on the next tick without advancing", func() {
			startPoller(5)

			Eventually(chain.FetchBlockCallCount).Should(BeNumerically(">=", 2))
			_, first := chain.FetchBlockArgsForCall(0)
			_, second := chain.FetchBlockArgsForCall(1)
			Expect(first).To(Equal(uint64(10)))
			Expect(second).To(Equal(uint64(10)))
			Eventually(poll.Cursor).Should(Equal(uint64(10)))
		})
	})

	When("block processing fails", func() {
		BeforeEach(func() {
			cursors.LoadCursorReturns(4, true, nil)
			chain.ChainTipReturns(5, nil)
			handler.ProcessBlockReturnsOnCall(0, errors.New("db unavailable"))
		})

		It("retries the failing block instead of skipping it", func() {
			startPoller(5)

			Eventually(handler.ProcessBlockCallCount).Should(BeNumerically(">=", 2))
			_, retried := handler.ProcessBlockArgsForCall(1)
			Expect(retried.NumberU64()).To(Equal(uint64(5)))
			Eventually(poll.Cursor).Should(Equal(uint64(5)))
		})
	})

	When("the chain tip query keeps failing", func() {
		BeforeEach(func() {
			cursors.LoadCursorReturns(4, true, nil)
			chain.ChainTipReturns(0, errors.New("connection refused"))
		})

		It("gives up once the reconnect budget is exhausted", func() {
			startPoller(2)

			var err error
			Eventually(runErr).Should(Receive(&err))
			Expect(errors.Is(err, poller.ErrMaxReconnects)).To(BeTrue())

			// keep AfterEach from blocking on a drained channel
			runErr <- nil
		})

		It("recovers when the node comes back before the budget runs out", func() {
			chain.ChainTipReturns(5, nil)
			chain.ChainTipReturnsOnCall(0, 0, errors.New("connection refused"))
			chain.ChainTipReturnsOnCall(1, 0, errors.New("connection refused"))

			startPoller(5)

			Eventually(handler.ProcessBlockCallCount).Should(Equal(1))
			Eventually(poll.State).Should(Equal(poller.StatePolling))
		})

		It("retries right after the reconnect delay, not a full poll interval later", func() {
			chain.ChainTipReturns(5, nil)
			chain.ChainTipReturnsOnCall(0, 0, errors.New("connection refused"))

			startPollerAt(time.Hour, 5)

			Eventually(handler.ProcessBlockCallCount).Should(Equal(1))
		})
	})

	When("the cursor cannot be loaded", func() {
		BeforeEach(func() {
			cursors.LoadCursorReturns(0, false, errors.New("relation does not exist"))
		})

		It("fails fast before polling", func() {
			startPoller(5)

			var err error
			Eventually(runErr).Should(Receive(&err))
			Expect(err).To(MatchError(ContainSubstring("initialize cursor")))
			Expect(chain.FetchBlockCallCount()).To(BeZero())

			runErr <- nil
		})
	})

	Describe("Stop", func() {
		BeforeEach(func() {
			cursors.LoadCursorReturns(4, true, nil)
			chain.ChainTipReturns(5, nil)
		})

		It("ends the loop cleanly and is safe to call twice", func() {
			startPoller(5)

			Eventually(poll.Cursor).Should(Equal(uint64(5)))
			poll.Stop()
			poll.Stop()

			var err error
			Eventually(runErr).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())

			runErr <- nil
		})
	})
})
