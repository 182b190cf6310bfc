package workspace

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/pkg/logger"
)

func newTestStore(t *testing.T, capacity int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workspaces.json")
	return NewStore(path, capacity, logger.NewNop())
}

func TestCacheWorkspaceIsIdempotentPerIntent(t *testing.T) {
	s := newTestStore(t, 10)

	first := s.CacheWorkspace("Track Crypto Prices", "<div>v1</div>", domain.WorkspaceDynamic, "", nil)
	second := s.CacheWorkspace("  track   crypto prices ", "<div>v2</div>", domain.WorkspaceDynamic, "", nil)
	assert.Equal(t, first, second, "intent variants map to the same workspace")

	entry, ok := s.FindByID(first)
	require.True(t, ok)
	assert.Equal(t, "<div>v1</div>", entry.HTMLContent, "repeat calls do not replace content")
	assert.Equal(t, 3, entry.Metadata.AccessCount, "create, repeat cache, and lookup each count")
}

func TestFindByIntentTouchesEntry(t *testing.T) {
	s := newTestStore(t, 10)
	id := s.CacheWorkspace("daily news digest", "<div>news</div>", domain.WorkspaceDynamic, "", nil)

	entry, ok := s.FindByIntent("Daily News Digest")
	require.True(t, ok)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, 2, entry.Metadata.AccessCount)

	_, ok = s.FindByIntent("something never cached")
	assert.False(t, ok)
}

func TestEvictionRemovesLeastRecentlyUsed(t *testing.T) {
	s := newTestStore(t, 2)

	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	oldest := s.CacheWorkspace("first workspace", "<div>1</div>", domain.WorkspaceDynamic, "", nil)
	second := s.CacheWorkspace("second workspace", "<div>2</div>", domain.WorkspaceDynamic, "", nil)

	// Touch the first so the second becomes LRU.
	_, ok := s.FindByID(oldest)
	require.True(t, ok)

	third := s.CacheWorkspace("third workspace", "<div>3</div>", domain.WorkspaceDynamic, "", nil)

	_, ok = s.FindByID(second)
	assert.False(t, ok, "least recently used entry evicted")
	_, ok = s.FindByID(oldest)
	assert.True(t, ok)
	_, ok = s.FindByID(third)
	assert.True(t, ok)
	assert.Equal(t, 2, s.Stats().TotalEntries, "exactly one eviction per overflow")
}

func TestDeriveTagsFallsBackToGeneral(t *testing.T) {
	s := newTestStore(t, 10)
	id := s.CacheWorkspace("xyzzy plugh", "<div></div>", domain.WorkspaceDynamic, "", nil)

	entry, ok := s.FindByID(id)
	require.True(t, ok)
	assert.Equal(t, []string{"general"}, entry.Metadata.Tags)
}

func TestByTagFiltersAndOrders(t *testing.T) {
	s := newTestStore(t, 10)

	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	s.CacheWorkspace("crypto price tracker", "<div></div>", domain.WorkspaceDynamic, "", nil)
	s.CacheWorkspace("my stock portfolio", "<div></div>", domain.WorkspaceDynamic, "", nil)
	s.CacheWorkspace("lofi music to relax", "<div></div>", domain.WorkspaceDynamic, "", nil)

	finance := s.ByTag("finance")
	require.Len(t, finance, 2)
	assert.Equal(t, "my stock portfolio", finance[0].Intent, "most recently accessed first")
	assert.Equal(t, "crypto price tracker", finance[1].Intent)

	assert.Empty(t, s.ByTag("travel"))
}

func TestUpdateStateMergesPartial(t *testing.T) {
	s := newTestStore(t, 10)
	id := s.CacheWorkspace("note taking", "<div></div>", domain.WorkspaceDynamic, "", &domain.WorkspaceState{
		InputValues: map[string]string{"title": "draft", "body": "hello"},
		ActiveTab:   "editor",
	})

	ok := s.UpdateState(id, domain.WorkspaceState{
		InputValues: map[string]string{"title": "final"},
	})
	require.True(t, ok)

	entry, _ := s.FindByID(id)
	assert.Equal(t, "final", entry.State.InputValues["title"])
	assert.Equal(t, "hello", entry.State.InputValues["body"], "unmentioned keys survive")
	assert.Equal(t, "editor", entry.State.ActiveTab, "unset fields survive")

	assert.False(t, s.UpdateState("no-such-id", domain.WorkspaceState{}))
}

func TestSnapshotSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspaces.json")

	s := NewStore(path, 10, logger.NewNop())
	id := s.CacheWorkspace("weather in taipei", "<div>sunny</div>", domain.WorkspaceDynamic, "", nil)

	reloaded := NewStore(path, 10, logger.NewNop())
	entry, ok := reloaded.FindByID(id)
	require.True(t, ok)
	assert.Equal(t, "<div>sunny</div>", entry.HTMLContent)
	assert.Equal(t, "weather in taipei", entry.Intent)
	assert.Equal(t, "Weather", entry.Preview.Title)
}

func TestRecentOrdersByLastAccess(t *testing.T) {
	s := newTestStore(t, 10)

	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	s.CacheWorkspace("alpha workspace", "<div></div>", domain.WorkspaceDynamic, "", nil)
	s.CacheWorkspace("beta workspace", "<div></div>", domain.WorkspaceDynamic, "", nil)
	s.FindByIntent("alpha workspace")

	recent := s.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "alpha workspace", recent[0].Intent)

	assert.Len(t, s.Recent(1), 1)
}

func TestDeleteAndClear(t *testing.T) {
	s := newTestStore(t, 10)
	id := s.CacheWorkspace("throwaway", "<div></div>", domain.WorkspaceDynamic, "", nil)

	assert.True(t, s.Delete(id))
	assert.False(t, s.Delete(id))
	_, ok := s.FindByIntent("throwaway")
	assert.False(t, ok)

	s.CacheWorkspace("another one", "<div></div>", domain.WorkspaceDynamic, "", nil)
	s.Clear()
	assert.Equal(t, 0, s.Stats().TotalEntries)
}

func TestDerivePreviewIsStable(t *testing.T) {
	a := derivePreview("bitcoin dashboard", domain.WorkspaceDynamic, "")
	b := derivePreview("bitcoin dashboard", domain.WorkspaceDynamic, "")
	assert.Equal(t, a, b)
	assert.Equal(t, "Crypto Tracker", a.Title)
	assert.Equal(t, "💰", a.Icon)

	static := derivePreview("anything", domain.WorkspaceStatic, "Calculator")
	assert.Equal(t, "Calculator", static.Title)

	fallback := derivePreview("organize my sock drawer by color today", domain.WorkspaceDynamic, "")
	assert.Equal(t, "Organize My Sock Drawer By", fallback.Title)
}

func TestStatsCountsTypesAndTags(t *testing.T) {
	s := newTestStore(t, 10)
	s.CacheWorkspace("crypto dashboard", "<div></div>", domain.WorkspaceDynamic, "", nil)
	s.CacheWorkspace("calc pad", "<div></div>", domain.WorkspaceStatic, "calculator", nil)

	stats := s.Stats()
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 1, stats.DynamicCount)
	assert.Equal(t, 1, stats.StaticCount)
	assert.Equal(t, 1, stats.TagCounts["finance"])
}
