package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pragmr/vorko/internal/domain"
)

func TestWatchersSubscribeReportsChange(t *testing.T) {
	w := NewWatcherRegistry()

	assert.True(t, w.Subscribe("pub", "v1"))
	assert.False(t, w.Subscribe("pub", "v1"))
	assert.ElementsMatch(t, []domain.SessionID{"v1"}, w.Watchers("pub"))
}

func TestWatchersUnsubscribe(t *testing.T) {
	w := NewWatcherRegistry()
	w.Subscribe("pub", "v1")

	assert.True(t, w.Unsubscribe("pub", "v1"))
	assert.False(t, w.Unsubscribe("pub", "v1"))
	assert.False(t, w.Unsubscribe("other", "v1"))
}

func TestWatchersResetKeepsSet(t *testing.T) {
	w := NewWatcherRegistry()
	w.Subscribe("pub", "v1")
	w.Subscribe("pub", "v2")

	w.Reset("pub")
	assert.True(t, w.Has("pub"))
	assert.Empty(t, w.Watchers("pub"))
}

func TestWatchersClearDropsSet(t *testing.T) {
	w := NewWatcherRegistry()
	w.Ensure("pub")
	w.Clear("pub")
	assert.False(t, w.Has("pub"))
}

func TestWatchersRemoveViewerEverywhere(t *testing.T) {
	w := NewWatcherRegistry()
	w.Subscribe("p1", "v1")
	w.Subscribe("p2", "v1")
	w.Subscribe("p3", "v2")

	changed := w.RemoveViewerEverywhere("v1")
	assert.ElementsMatch(t, []domain.SessionID{"p1", "p2"}, changed)
	assert.Empty(t, w.Watchers("p1"))
	assert.ElementsMatch(t, []domain.SessionID{"v2"}, w.Watchers("p3"))

	assert.Empty(t, w.RemoveViewerEverywhere("v1"))
}
