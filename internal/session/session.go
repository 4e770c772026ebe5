package session

import (
	"sync"
	"time"

	"careerpilot/pkg/types"
)

// Store holds everything the current session owns: the loaded resume
// text, the pasted job description, saved resume versions and the chat
// log. It is mutated only by explicit user actions and dies with the
// process. The mutex is there because the HTTP surface gives no ordering
// guarantee between handlers, not because sessions are shared.
type Store struct {
	mu       sync.Mutex
	resume   string
	jobDesc  string
	versions map[string]string
	order    []string
	turns    []types.ChatTurn
}

func New() *Store {
	return &Store{
		versions: make(map[string]string),
	}
}

func (s *Store) SetResume(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = text
}

func (s *Store) Resume() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume
}

func (s *Store) SetJobDescription(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobDesc = text
}

func (s *Store) JobDescription() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobDesc
}

// SaveVersion stores text under label, overwriting any previous text for
// the same label. Reports whether an existing entry was replaced.
func (s *Store) SaveVersion(label, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, overwritten := s.versions[label]
	if !overwritten {
		s.order = append(s.order, label)
	}
	s.versions[label] = text
	return overwritten
}

// Versions lists saved labels in first-insertion order; an overwrite
// keeps the label's original position.
func (s *Store) Versions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := make([]string, len(s.order))
	copy(labels, s.order)
	return labels
}

func (s *Store) Version(label string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.versions[label]
	return text, ok
}

func (s *Store) AppendTurn(role types.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, types.ChatTurn{
		Role:    role,
		Content: content,
		At:      time.Now(),
	})
}

func (s *Store) Turns() []types.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := make([]types.ChatTurn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

// ClearChat empties the conversation log. Saved versions are untouched.
func (s *Store) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
