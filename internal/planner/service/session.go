package service

import (
	"sync"

	"house-planner/internal/planner/models"

	"github.com/google/uuid"
)

// ============================================================
// Session Manager
// ============================================================

// Session хранит параметры дома и историю диалога одной генерации.
type Session struct {
	Params  models.UserParams
	History []models.ChatMessage
}

// SessionManager держит сессии диалога в памяти по токену. Состояние
// привязано к токену запроса, а не к процессу: геометрия остается чистой.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Create открывает сессию и возвращает токен.
func (m *SessionManager) Create(params models.UserParams) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	m.sessions[token] = &Session{Params: params}
	return token
}

// Get возвращает копию сессии по токену.
func (m *SessionManager) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}

	out := Session{Params: s.Params}
	out.History = make([]models.ChatMessage, len(s.History))
	copy(out.History, s.History)
	return out, true
}

// Append дописывает сообщения в историю сессии.
func (m *SessionManager) Append(token string, messages ...models.ChatMessage) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return false
	}
	s.History = append(s.History, messages...)
	return true
}

// Drop закрывает сессию после генерации.
func (m *SessionManager) Drop(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
}
