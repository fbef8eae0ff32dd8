package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vfsemu/vfsemu/internal/infrastructure/monitoring"
	"github.com/vfsemu/vfsemu/internal/vfs"
)

// Session is one live navigation context over the shared tree. The cursor
// belongs exclusively to this session; the tree is immutable and shared.
type Session struct {
	ID        string
	Nav       *vfs.NavContext
	CreatedAt time.Time

	mu       sync.Mutex
	lastUsed time.Time
}

// Touch marks the session as used now.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastUsed = time.Now()
	s.mu.Unlock()
}

// LastUsed returns the last access time.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Metadata is the listing view of a session.
type Metadata struct {
	ID        string    `json:"id"`
	Cwd       string    `json:"cwd"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
}

// Manager tracks live sessions for the serving layer. Sessions exist only
// for the lifetime of the process; there is no persistence.
type Manager struct {
	tree    *vfs.Tree
	metrics *monitoring.Metrics

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager over one loaded tree.
func NewManager(tree *vfs.Tree) *Manager {
	return &Manager{
		tree:     tree,
		sessions: make(map[string]*Session),
	}
}

// WithMetrics attaches a metrics collector.
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Tree returns the shared tree.
func (m *Manager) Tree() *vfs.Tree { return m.tree }

// Create opens a new session with its cursor at the root.
func (m *Manager) Create() *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		Nav:       vfs.NewContext(m.tree),
		CreatedAt: now,
		lastUsed:  now,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.SessionOpened()
	}
	return session
}

// Get returns a live session and marks it used.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		session.Touch()
	}
	return session, ok
}

// Delete destroys a session. Returns false if it does not exist.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if ok && m.metrics != nil {
		m.metrics.SessionClosed()
	}
	return ok
}

// List returns metadata for all live sessions, oldest first.
func (m *Manager) List() []Metadata {
	m.mu.RLock()
	metadata := make([]Metadata, 0, len(m.sessions))
	for _, session := range m.sessions {
		metadata = append(metadata, Metadata{
			ID:        session.ID,
			Cwd:       session.Nav.Pwd(),
			CreatedAt: session.CreatedAt,
			LastUsed:  session.LastUsed(),
		})
	}
	m.mu.RUnlock()

	sort.Slice(metadata, func(i, j int) bool {
		return metadata[i].CreatedAt.Before(metadata[j].CreatedAt)
	})
	return metadata
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
