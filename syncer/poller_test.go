package syncer_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Sproutly/SPROUT-MOBILE/shared"
	. "github.com/Sproutly/SPROUT-MOBILE/syncer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Every", func() {

	It("should invoke the function on each tick until cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls int32
		done := make(chan struct{})
		go func() {
			Every(ctx, "test-loop", 5*time.Millisecond, shared.NewLogger("poller-test"), func(context.Context) error {
				atomic.AddInt32(&calls, 1)
				return nil
			})
			close(done)
		}()

		Eventually(func() int32 { return atomic.LoadInt32(&calls) }, "2s").Should(BeNumerically(">=", 3))
		cancel()
		Eventually(done, "2s").Should(BeClosed())
	})

	It("should keep ticking after an iteration fails", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls int32
		go Every(ctx, "flaky-loop", 5*time.Millisecond, shared.NewLogger("poller-test"), func(context.Context) error {
			atomic.AddInt32(&calls, 1)
			return errors.New("transient")
		})

		Eventually(func() int32 { return atomic.LoadInt32(&calls) }, "2s").Should(BeNumerically(">=", 2))
	})
})
