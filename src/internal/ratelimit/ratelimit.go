// Package ratelimit gates financial actions with a fixed cooldown window plus
// an attempt cap. The check itself is a pure function; callers own and persist
// the state between attempts.
package ratelimit

import (
	"sync"
	"time"

	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

// Cooldown is the fixed wait between consecutive financial actions. It is
// intentionally not configurable per call.
const Cooldown = 30 * time.Second

// Check applies two independent gates: the attempt cap first (an exhausted
// cap is reported regardless of cooldown state), then the cooldown window.
// A zero lastAction means no previous action, and a maxAttempts of zero
// disables the cap.
func Check(lastAction time.Time, maxAttempts, currentAttempts int) *validation.Error {
	if maxAttempts > 0 && currentAttempts >= maxAttempts {
		return validation.NewError(validation.KindRateLimitAttemptsExceeded)
	}
	if !lastAction.IsZero() && time.Since(lastAction) < Cooldown {
		return validation.NewError(validation.KindRateLimitCooldown)
	}
	return nil
}

// State is the caller-owned record backing Check. Every submit attempt is
// recorded, not only failures; a successful action resets the record.
type State struct {
	LastAction time.Time
	Attempts   int
}

func (s *State) Record(now time.Time) {
	s.LastAction = now
	s.Attempts++
}

func (s *State) Reset() {
	*s = State{}
}

// Tracker keys rate-limit state by user and action type so the gateway can
// apply the per-action gates the client UI used to keep in local state.
type Tracker struct {
	mu     sync.Mutex
	states map[string]*State
}

func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]*State)}
}

func key(user, action string) string {
	return user + "|" + action
}

func (t *Tracker) Check(user, action string, maxAttempts int) *validation.Error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.states[key(user, action)]
	if !ok {
		return nil
	}
	return Check(state.LastAction, maxAttempts, state.Attempts)
}

func (t *Tracker) Record(user, action string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := key(user, action)
	state, ok := t.states[k]
	if !ok {
		state = &State{}
		t.states[k] = state
	}
	state.Record(time.Now())
}

func (t *Tracker) Reset(user, action string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if state, ok := t.states[key(user, action)]; ok {
		state.Reset()
	}
}
