package feed_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthdm/hollywood/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartscope/actor/feed"
	"chartscope/dataset"
)

const sample = `{
  "columns": [["x", 1551398400000, 1551484800000, 1551571200000], ["y0", 1, 2, 3]],
  "types": {"x": "x", "y0": "line"},
  "names": {"y0": "Joined"}
}`

func next(t *testing.T, ch chan any) any {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message from feed")
		return nil
	}
}

func TestFeedLoadsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	e, err := actor.NewEngine(actor.NewEngineConfig())
	require.NoError(t, err)
	ch := make(chan any, 4)
	pid := e.Spawn(feed.New(ch, path), "feed")

	msg := next(t, ch)
	loaded, ok := msg.(feed.Loaded)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 3, loaded.Dataset.Len())

	require.NoError(t, os.WriteFile(path, []byte(`{"columns": []}`), 0o644))
	e.Send(pid, feed.Reload{})
	msg = next(t, ch)
	failed, ok := msg.(feed.Failed)
	require.True(t, ok, "got %T", msg)
	assert.ErrorIs(t, failed.Err, dataset.ErrNoXAxis)

	<-e.Poison(pid).Done()
	_, open := <-ch
	assert.False(t, open)
}
