package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service keeps an append-only in-memory trail of lifecycle actions. Entries
// are never edited or removed for the life of the process.
type Service struct {
	mu      sync.RWMutex
	entries []Entry
}

type Entry struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actorId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	RequestID  string    `json:"requestId,omitempty"`
	Details    any       `json:"details,omitempty"`
	At         time.Time `json:"at"`
}

func New() *Service {
	return &Service{}
}

func (s *Service) Record(actorID, action, entityType, entityID, requestID string, details any) Entry {
	entry := Entry{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		RequestID:  requestID,
		Details:    details,
		At:         time.Now().UTC(),
	}
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	return entry
}

func (s *Service) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ListByEntity returns the trail for one record, oldest first.
func (s *Service) ListByEntity(entityType, entityID string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Entry
	for _, entry := range s.entries {
		if entry.EntityType == entityType && entry.EntityID == entityID {
			out = append(out, entry)
		}
	}
	return out
}
