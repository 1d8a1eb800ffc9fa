package ws

import (
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// session is one live chat connection plus its bookkeeping.
type session struct {
	conn        *websocket.Conn
	remoteAddr  string
	connectedAt time.Time
}

// SessionInfo is the dashboard view of a connected chat session.
type SessionInfo struct {
	SessionID   string    `json:"session_id"`
	RemoteAddr  string    `json:"remote_addr"`
	ConnectedAt time.Time `json:"connected_at"`
}

// Manager keeps track of active chat websocket sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]session)}
}

// Register registers a session connection, replacing any existing one.
func (m *Manager) Register(sessionID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sessions[sessionID]; ok && old.conn != conn {
		// close old connection to avoid leaks
		_ = old.conn.Close()
	}
	m.sessions[sessionID] = session{
		conn:        conn,
		remoteAddr:  conn.RemoteAddr().String(),
		connectedAt: time.Now().UTC(),
	}
}

// Unregister removes a session connection.
func (m *Manager) Unregister(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		_ = s.conn.Close()
		delete(m.sessions, sessionID)
	}
}

// IsConnected returns whether a session is currently connected.
func (m *Manager) IsConnected(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[sessionID]
	return ok
}

// Count returns the number of connected sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sessions returns a snapshot of connected sessions, oldest first.
func (m *Manager) Sessions() []SessionInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]SessionInfo, 0, len(m.sessions))
	for id, s := range m.sessions {
		infos = append(infos, SessionInfo{
			SessionID:   id,
			RemoteAddr:  s.remoteAddr,
			ConnectedAt: s.connectedAt,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].ConnectedAt.Equal(infos[j].ConnectedAt) {
			return infos[i].SessionID < infos[j].SessionID
		}
		return infos[i].ConnectedAt.Before(infos[j].ConnectedAt)
	})
	return infos
}
