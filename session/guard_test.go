package session_test

import (
	"sync"
	"sync/atomic"
	"time"

	. "github.com/Sproutly/SPROUT-MOBILE/session"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LogoutGuard", func() {

	var (
		clock *fakeClock
		guard *LogoutGuard
	)

	BeforeEach(func() {
		clock = &fakeClock{}
		clock.Set(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
		guard = &LogoutGuard{Clock: clock}
	})

	It("should grant ownership to the first caller only", func() {
		Expect(guard.Begin()).To(BeTrue())
		Expect(guard.Begin()).To(BeFalse())
		Expect(guard.Begin()).To(BeFalse())
	})

	It("should grant exactly one ownership under concurrency", func() {
		var owners int32
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if guard.Begin() {
					atomic.AddInt32(&owners, 1)
				}
			}()
		}
		wg.Wait()
		Expect(atomic.LoadInt32(&owners)).To(Equal(int32(1)))
	})

	It("should reset on its own after the debounce window", func() {
		Expect(guard.Begin()).To(BeTrue())

		clock.Advance(LogoutDebounceWindow - time.Millisecond)
		Expect(guard.Begin()).To(BeFalse())

		clock.Advance(2 * time.Millisecond)
		Expect(guard.Begin()).To(BeTrue())
	})
})
