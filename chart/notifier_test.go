package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartscope/event"
)

func TestNotifyCoalescesInsideWindow(t *testing.T) {
	clk := newFakeClock()
	n := NewNotifier(40*time.Millisecond, clk.Now)
	var got []any
	n.Subscribe(event.ChangeRange, func(p any) { got = append(got, p) })

	n.Notify(event.ChangeRange, 1)
	n.Notify(event.ChangeRange, 2)
	n.Notify(event.ChangeRange, 3)
	require.Equal(t, []any{1}, got, "first call is delivered right away")

	n.Tick(clk.Advance(20 * time.Millisecond))
	require.Equal(t, []any{1}, got)

	n.Tick(clk.Advance(20 * time.Millisecond))
	require.Equal(t, []any{1, 3}, got, "only the last payload survives the window")
	assert.True(t, n.Pending(event.ChangeRange), "trailing emission restarts the window")

	n.Tick(clk.Advance(40 * time.Millisecond))
	assert.Equal(t, []any{1, 3}, got)
	assert.False(t, n.Pending(event.ChangeRange), "idle window closes")

	n.Notify(event.ChangeRange, 4)
	assert.Equal(t, []any{1, 3, 4}, got)
}

func TestNotifyAfterWindowClosesEmitsWithoutTick(t *testing.T) {
	clk := newFakeClock()
	n := NewNotifier(40*time.Millisecond, clk.Now)
	var got []any
	n.Subscribe(event.ChangeRange, func(p any) { got = append(got, p) })

	n.Notify(event.ChangeRange, 1)
	clk.Advance(40 * time.Millisecond)
	assert.False(t, n.Pending(event.ChangeRange))

	n.Notify(event.ChangeRange, 2)
	assert.Equal(t, []any{1, 2}, got, "leading edge fires even if no Tick ran in between")

	n.Notify(event.ChangeRange, 3)
	n.Tick(clk.Advance(39 * time.Millisecond))
	assert.Equal(t, []any{1, 2}, got)
	n.Tick(clk.Advance(time.Millisecond))
	assert.Equal(t, []any{1, 2, 3}, got)
}

func TestNotifyWindowsArePerName(t *testing.T) {
	clk := newFakeClock()
	n := NewNotifier(time.Second, clk.Now)
	var ranges, details int
	n.Subscribe(event.ChangeRange, func(any) { ranges++ })
	n.Subscribe(event.ToggleDetails, func(any) { details++ })

	n.Notify(event.ChangeRange, nil)
	n.Notify(event.ToggleDetails, nil)
	n.Notify(event.ChangeRange, nil)

	assert.Equal(t, 1, ranges)
	assert.Equal(t, 1, details)
}

func TestEmitBypassesDebounce(t *testing.T) {
	clk := newFakeClock()
	n := NewNotifier(time.Second, clk.Now)
	var got []any
	n.Subscribe(event.SeriaToggle, func(p any) { got = append(got, p) })

	n.Emit(event.SeriaToggle, "a")
	n.Emit(event.SeriaToggle, "b")

	assert.Equal(t, []any{"a", "b"}, got)
	assert.False(t, n.Pending(event.SeriaToggle))
}

func TestZeroIntervalDeliversEverything(t *testing.T) {
	n := NewNotifier(0, nil)
	calls := 0
	n.Subscribe(event.ChangeRange, func(any) { calls++ })
	for i := 0; i < 5; i++ {
		n.Notify(event.ChangeRange, i)
	}
	assert.Equal(t, 5, calls)
}

func TestUnsubscribe(t *testing.T) {
	n := NewNotifier(0, nil)
	var a, b int
	unsubA := n.Subscribe(event.ChangeRange, func(any) { a++ })
	n.Subscribe(event.ChangeRange, func(any) { b++ })

	n.Emit(event.ChangeRange, nil)
	unsubA()
	unsubA()
	n.Emit(event.ChangeRange, nil)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}
