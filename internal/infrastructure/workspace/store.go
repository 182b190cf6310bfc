// Package workspace implements the process-wide workspace cache: in-memory
// entries persisted wholesale to a JSON snapshot on every mutation, with LRU
// eviction and deterministic preview/tag derivation.
package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// Store is the sole owner of cached workspaces. Consumers get copies or go
// through explicit mutation methods; persist failures are logged and
// swallowed so caching never breaks the primary flow.
type Store struct {
	mu       sync.Mutex
	entries  map[string]*domain.CachedWorkspace
	byIntent map[string]string
	path     string
	capacity int
	logger   ports.Logger
	now      func() time.Time
}

// NewStore loads the snapshot (if any) from ~/.intentdesk/workspaces.json or
// the given path and starts empty when none exists.
func NewStore(path string, capacity int, logger ports.Logger) *Store {
	if path == "" {
		path = filepath.Join(userHome(), ".intentdesk", "workspaces.json")
	}
	if capacity <= 0 {
		capacity = domain.DefaultWorkspaceCacheCapacity
	}
	s := &Store{
		entries:  make(map[string]*domain.CachedWorkspace),
		byIntent: make(map[string]string),
		path:     path,
		capacity: capacity,
		logger:   logger,
		now:      time.Now,
	}
	s.load()
	return s
}

// CacheWorkspace stores a generated workspace. It is idempotent per
// normalized intent: repeated calls update access bookkeeping and return the
// existing id rather than creating a duplicate.
func (s *Store) CacheWorkspace(intent, htmlContent string, workspaceType domain.WorkspaceType, component string, initialState *domain.WorkspaceState) string {
	key := domain.NormalizeIntent(intent)

	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byIntent[key]; ok {
		if entry, ok := s.entries[id]; ok {
			s.touch(entry)
			s.persist()
			return id
		}
	}

	if len(s.entries) >= s.capacity {
		s.evictOne()
	}

	now := s.now()
	entry := &domain.CachedWorkspace{
		ID:          uuid.NewString(),
		Intent:      key,
		HTMLContent: htmlContent,
		Metadata: domain.WorkspaceMetadata{
			CreatedAt:      now,
			LastAccessedAt: now,
			AccessCount:    1,
			Tags:           deriveTags(key),
			WorkspaceType:  workspaceType,
			Component:      component,
		},
		Preview: derivePreview(key, workspaceType, component),
	}
	if initialState != nil {
		entry.State = *initialState
	}
	s.entries[entry.ID] = entry
	s.byIntent[key] = entry.ID
	s.persist()
	return entry.ID
}

// FindByIntent returns a copy of the workspace cached for the normalized
// intent, updating access bookkeeping on a hit.
func (s *Store) FindByIntent(intent string) (domain.CachedWorkspace, bool) {
	key := domain.NormalizeIntent(intent)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byIntent[key]
	if !ok {
		return domain.CachedWorkspace{}, false
	}
	entry, ok := s.entries[id]
	if !ok {
		return domain.CachedWorkspace{}, false
	}
	s.touch(entry)
	s.persist()
	return cloneWorkspace(entry), true
}

// FindByID returns a copy of the workspace with the given id, updating access
// bookkeeping on a hit.
func (s *Store) FindByID(id string) (domain.CachedWorkspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return domain.CachedWorkspace{}, false
	}
	s.touch(entry)
	s.persist()
	return cloneWorkspace(entry), true
}

// Recent lists up to limit workspaces by most recent access. It is a read
// view: bookkeeping is not updated.
func (s *Store) Recent(limit int) []domain.CachedWorkspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*domain.CachedWorkspace, 0, len(s.entries))
	for _, entry := range s.entries {
		all = append(all, entry)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Metadata.LastAccessedAt.After(all[j].Metadata.LastAccessedAt)
	})
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	out := make([]domain.CachedWorkspace, len(all))
	for i, entry := range all {
		out[i] = cloneWorkspace(entry)
	}
	return out
}

// ByTag lists workspaces carrying the given tag, most recently accessed first.
func (s *Store) ByTag(tag string) []domain.CachedWorkspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.CachedWorkspace
	for _, entry := range s.entries {
		for _, t := range entry.Metadata.Tags {
			if t == tag {
				out = append(out, cloneWorkspace(entry))
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Metadata.LastAccessedAt.After(out[j].Metadata.LastAccessedAt)
	})
	return out
}

// UpdateState merges a partial UI state into the workspace. The state is
// never replaced wholesale.
func (s *Store) UpdateState(id string, partial domain.WorkspaceState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false
	}
	entry.State.Merge(partial)
	entry.Metadata.LastAccessedAt = s.now()
	s.persist()
	return true
}

// Delete removes a workspace.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false
	}
	delete(s.entries, id)
	delete(s.byIntent, entry.Intent)
	s.persist()
	return true
}

// Clear removes everything.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*domain.CachedWorkspace)
	s.byIntent = make(map[string]string)
	s.persist()
}

// Stats summarizes the cache.
func (s *Store) Stats() domain.WorkspaceCacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.WorkspaceCacheStats{
		TotalEntries: len(s.entries),
		TagCounts:    make(map[string]int),
	}
	for _, entry := range s.entries {
		switch entry.Metadata.WorkspaceType {
		case domain.WorkspaceStatic:
			stats.StaticCount++
		case domain.WorkspaceDynamic:
			stats.DynamicCount++
		}
		for _, tag := range entry.Metadata.Tags {
			stats.TagCounts[tag]++
		}
	}
	return stats
}

// touch updates access bookkeeping. Caller holds the mutex.
func (s *Store) touch(entry *domain.CachedWorkspace) {
	entry.Metadata.LastAccessedAt = s.now()
	entry.Metadata.AccessCount++
}

// evictOne removes exactly the least-recently-used entry. Caller holds the
// mutex.
func (s *Store) evictOne() {
	var victim *domain.CachedWorkspace
	for _, entry := range s.entries {
		if victim == nil || entry.Metadata.LastAccessedAt.Before(victim.Metadata.LastAccessedAt) {
			victim = entry
		}
	}
	if victim == nil {
		return
	}
	delete(s.entries, victim.ID)
	delete(s.byIntent, victim.Intent)
	s.logger.Debug("evicted workspace", map[string]interface{}{
		"id":     victim.ID,
		"intent": victim.Intent,
	})
}

type snapshot struct {
	Workspaces []domain.CachedWorkspace `json:"workspaces"`
}

// persist writes the full snapshot synchronously. Failures are logged and
// swallowed. Caller holds the mutex.
func (s *Store) persist() {
	snap := snapshot{Workspaces: make([]domain.CachedWorkspace, 0, len(s.entries))}
	for _, entry := range s.entries {
		snap.Workspaces = append(snap.Workspaces, *entry)
	}
	sort.Slice(snap.Workspaces, func(i, j int) bool {
		return snap.Workspaces[i].Metadata.CreatedAt.Before(snap.Workspaces[j].Metadata.CreatedAt)
	})

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.logger.Warn("workspace snapshot marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirectoryPermissions); err != nil {
		s.logger.Warn("workspace snapshot dir failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := os.WriteFile(s.path, data, domain.DataFilePermissions); err != nil {
		s.logger.Warn("workspace snapshot write failed", map[string]interface{}{"error": err.Error()})
	}
}

// load replaces the in-memory cache wholesale from the snapshot; a missing
// file means start empty.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("workspace snapshot read failed", map[string]interface{}{"error": err.Error()})
		}
		return
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("workspace snapshot corrupt, starting empty", map[string]interface{}{"error": err.Error()})
		return
	}
	for i := range snap.Workspaces {
		entry := snap.Workspaces[i]
		s.entries[entry.ID] = &entry
		s.byIntent[entry.Intent] = entry.ID
	}
}

func cloneWorkspace(entry *domain.CachedWorkspace) domain.CachedWorkspace {
	out := *entry
	out.Metadata.Tags = append([]string(nil), entry.Metadata.Tags...)
	out.State = cloneState(entry.State)
	return out
}

func cloneState(state domain.WorkspaceState) domain.WorkspaceState {
	out := state
	if state.InputValues != nil {
		out.InputValues = make(map[string]string, len(state.InputValues))
		for k, v := range state.InputValues {
			out.InputValues[k] = v
		}
	}
	if state.ScrollPositions != nil {
		out.ScrollPositions = make(map[string]int, len(state.ScrollPositions))
		for k, v := range state.ScrollPositions {
			out.ScrollPositions[k] = v
		}
	}
	if state.Customizations != nil {
		out.Customizations = make(map[string]string, len(state.Customizations))
		for k, v := range state.Customizations {
			out.Customizations[k] = v
		}
	}
	if state.CursorPosition != nil {
		pos := *state.CursorPosition
		out.CursorPosition = &pos
	}
	return out
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.WorkspaceRepository = (*Store)(nil)
