package appraisal

import (
	"strings"
	"sync"
)

// Store is the canonical in-memory holder of appraisal records. It is a
// passive collaborator: records only enter via Append and only change with a
// complete value produced by the lifecycle engine, through Update for
// read-modify-write sequences or Replace for a plain swap. Insertion order is
// preserved.
type Store struct {
	mu      sync.RWMutex
	records []Appraisal
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) List() []Appraisal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Appraisal, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) ListByEmployee(employeeID string) []Appraisal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Appraisal
	for _, record := range s.records {
		if record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}
	return out
}

// ListByReviewer returns the appraisals where userID occupies one of the
// three reviewer slots.
func (s *Store) ListByReviewer(userID string) []Appraisal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Appraisal
	for _, record := range s.records {
		if record.HasReviewer(userID) {
			out = append(out, record)
		}
	}
	return out
}

func (s *Store) Get(id string) (Appraisal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records {
		if record.ID == id {
			return record, nil
		}
	}
	return Appraisal{}, ErrNotFound
}

// Update applies fn to the record matching id while holding the write lock,
// so a read-modify-write sequence cannot interleave with another writer and
// lose its update. When fn returns an error the record is left untouched.
func (s *Store) Update(id string, fn func(Appraisal) (Appraisal, error)) (Appraisal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, record := range s.records {
		if record.ID == id {
			updated, err := fn(record)
			if err != nil {
				return Appraisal{}, err
			}
			s.records[i] = updated
			return updated, nil
		}
	}
	return Appraisal{}, ErrNotFound
}

// Replace atomically swaps the record matching updated.ID. No partial merge:
// the caller supplies the complete new value. A missing record is reported,
// never silently appended.
func (s *Store) Replace(updated Appraisal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, record := range s.records {
		if record.ID == updated.ID {
			s.records[i] = updated
			return nil
		}
	}
	return ErrNotFound
}

// Append adds a freshly created cycle, rejecting a duplicate
// (employee, month, year) triple.
func (s *Store) Append(record Appraisal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.records {
		if existing.EmployeeID == record.EmployeeID &&
			strings.EqualFold(existing.Month, record.Month) &&
			existing.Year == record.Year {
			return ErrDuplicateCycle
		}
	}
	s.records = append(s.records, record)
	return nil
}
