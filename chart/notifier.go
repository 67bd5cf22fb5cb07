package chart

import (
	"time"

	"chartscope/event"

	"golang.org/x/time/rate"
)

// DefaultDebounce is one animation frame at 24fps.
const DefaultDebounce = time.Second / 24

type Handler func(payload any)

type debounceEntry struct {
	limiter    *rate.Limiter
	pending    any
	hasPending bool
}

// Notifier is a debounced publish/subscribe channel shared by every surface
// of a Chart. Each event name gets a one-token rate limiter fed with the
// caller's clock, so it is driven by Tick from the frame loop and never
// spawns goroutines; handlers always run on the caller's goroutine.
type Notifier struct {
	interval time.Duration
	limit    rate.Limit
	clock    func() time.Time
	handlers map[event.Name][]*Handler
	entries  map[event.Name]*debounceEntry
}

func NewNotifier(interval time.Duration, clock func() time.Time) *Notifier {
	if clock == nil {
		clock = time.Now
	}
	n := &Notifier{
		interval: interval,
		clock:    clock,
		handlers: make(map[event.Name][]*Handler),
		entries:  make(map[event.Name]*debounceEntry),
	}
	if interval > 0 {
		// Nudged up so a whole token is back exactly one interval later
		// despite float rounding in the limiter.
		n.limit = rate.Every(interval) * (1 + 1e-9)
	}
	return n
}

// Subscribe attaches h to name and returns a func that detaches it again.
func (n *Notifier) Subscribe(name event.Name, h Handler) func() {
	hp := &h
	n.handlers[name] = append(n.handlers[name], hp)
	return func() {
		hs := n.handlers[name]
		for i, cur := range hs {
			if cur == hp {
				n.handlers[name] = append(hs[:i:i], hs[i+1:]...)
				return
			}
		}
	}
}

func (n *Notifier) entry(name event.Name) *debounceEntry {
	e, ok := n.entries[name]
	if !ok {
		e = &debounceEntry{limiter: rate.NewLimiter(n.limit, 1)}
		n.entries[name] = e
	}
	return e
}

// Notify emits payload right away when the debounce window for name is
// closed and opens a new one. Inside an open window the payload replaces
// any pending one and is delivered by the first Tick after it closes.
func (n *Notifier) Notify(name event.Name, payload any) {
	if n.interval <= 0 {
		n.Emit(name, payload)
		return
	}
	e := n.entry(name)
	if !e.hasPending && e.limiter.AllowN(n.clock(), 1) {
		n.Emit(name, payload)
		return
	}
	e.pending = payload
	e.hasPending = true
}

// Emit delivers payload to the subscribers of name without debouncing.
func (n *Notifier) Emit(name event.Name, payload any) {
	for _, h := range n.handlers[name] {
		(*h)(payload)
	}
}

// Tick delivers pending payloads whose debounce window has closed. Each
// delivery opens the next window.
func (n *Notifier) Tick(now time.Time) {
	for name, e := range n.entries {
		if !e.hasPending || !e.limiter.AllowN(now, 1) {
			continue
		}
		payload := e.pending
		e.pending = nil
		e.hasPending = false
		n.Emit(name, payload)
	}
}

// Pending reports whether a debounce window is open for name.
func (n *Notifier) Pending(name event.Name) bool {
	e, ok := n.entries[name]
	if !ok {
		return false
	}
	return e.hasPending || e.limiter.TokensAt(n.clock()) < 1
}
