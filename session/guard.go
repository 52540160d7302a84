package session

import (
	"sync"
	"time"

	"github.com/Sproutly/SPROUT-MOBILE/shared"
)

// LogoutDebounceWindow is how long concurrent session-expiry signals are
// coalesced into the single logout that already ran.
const LogoutDebounceWindow = 3 * time.Second

// LogoutGuard serializes concurrent 401 handling into a single logout.
// The first caller of Begin owns the logout; every other caller inside the
// debounce window is suppressed. The window expires on its own, so a later
// genuine expiry starts a fresh logout.
type LogoutGuard struct {
	Clock shared.Clock `inject:""`

	mu         sync.Mutex
	lastLogout time.Time
}

// Begin reports whether the caller owns the logout.
func (g *LogoutGuard) Begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock().Now()
	if !g.lastLogout.IsZero() && now.Sub(g.lastLogout) < LogoutDebounceWindow {
		return false
	}
	g.lastLogout = now
	return true
}

func (g *LogoutGuard) clock() shared.Clock {
	if g.Clock != nil {
		return g.Clock
	}
	return shared.RealClock{}
}
