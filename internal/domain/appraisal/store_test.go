package appraisal

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestStoreAppendAndList(t *testing.T) {
	store := NewStore()
	first := New("7", "April", 2025)
	second := New("8", "April", 2025)

	if err := store.Append(first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	records := store.List()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != first.ID || records[1].ID != second.ID {
		t.Fatal("expected insertion order preserved")
	}
}

func TestStoreRejectsDuplicateCycle(t *testing.T) {
	store := NewStore()
	if err := store.Append(New("7", "April", 2025)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(New("7", "april", 2025)); !errors.Is(err, ErrDuplicateCycle) {
		t.Fatalf("expected ErrDuplicateCycle, got %v", err)
	}
	if err := store.Append(New("7", "May", 2025)); err != nil {
		t.Fatalf("different month must be allowed: %v", err)
	}
}

func TestStoreReplace(t *testing.T) {
	store := NewStore()
	record := New("7", "April", 2025)
	if err := store.Append(record); err != nil {
		t.Fatalf("append: %v", err)
	}

	updated, err := AssignReviewer(record, SlotHR, "2")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := store.Replace(updated); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := store.Get(record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HRID != "2" {
		t.Fatalf("expected replaced record, got %+v", got)
	}
}

func TestStoreReplaceMissingRecord(t *testing.T) {
	store := NewStore()
	if err := store.Replace(New("7", "April", 2025)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(store.List()) != 0 {
		t.Fatal("failed replace must not append")
	}
}

func TestStoreGetMissing(t *testing.T) {
	if _, err := NewStore().Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreListByReviewer(t *testing.T) {
	store := NewStore()
	record := New("7", "April", 2025)
	record, _ = AssignReviewer(record, SlotTeamLead, "6")
	if err := store.Append(record); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(New("8", "April", 2025)); err != nil {
		t.Fatalf("append unassigned: %v", err)
	}

	assigned := store.ListByReviewer("6")
	if len(assigned) != 1 || assigned[0].EmployeeID != "7" {
		t.Fatalf("expected one assigned cycle for reviewer, got %+v", assigned)
	}
	if got := store.ListByReviewer("99"); len(got) != 0 {
		t.Fatalf("expected no cycles for stranger, got %d", len(got))
	}
}

func TestStoreUpdateAppliesWithinCriticalSection(t *testing.T) {
	store := NewStore()
	record := assignAll(t, New("7", "April", 2025))
	if err := store.Append(record); err != nil {
		t.Fatalf("append: %v", err)
	}

	updated, err := store.Update(record.ID, func(a Appraisal) (Appraisal, error) {
		return AssignReviewer(a, SlotHR, "10")
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.HRID != "10" {
		t.Fatalf("expected reassigned hr slot, got %+v", updated)
	}
	got, _ := store.Get(record.ID)
	if got.HRID != "10" {
		t.Fatal("update result not persisted")
	}
}

func TestStoreUpdateErrorLeavesRecordUntouched(t *testing.T) {
	store := NewStore()
	record := New("7", "April", 2025)
	if err := store.Append(record); err != nil {
		t.Fatalf("append: %v", err)
	}

	boom := errors.New("boom")
	if _, err := store.Update(record.ID, func(a Appraisal) (Appraisal, error) {
		a.Status = StatusFinalized
		return a, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	got, _ := store.Get(record.ID)
	if got.Status != StatusPendingAssignment {
		t.Fatalf("failed update must not change the record, got %s", got.Status)
	}

	if _, err := store.Update("missing", func(a Appraisal) (Appraisal, error) {
		return a, nil
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Concurrent evaluators each read, append their rating, and write back. The
// write lock held across the whole Update means no submission can be lost to
// a stale overwrite.
func TestStoreUpdateSerializesConcurrentRatings(t *testing.T) {
	store := NewStore()
	record := assignAll(t, New("7", "April", 2025))
	if err := store.Append(record); err != nil {
		t.Fatalf("append: %v", err)
	}

	evaluators := []struct{ id, role string }{
		{"2", "HR"},
		{"6", "Team Lead"},
		{"4", "Manager"},
	}
	var wg sync.WaitGroup
	for _, evaluator := range evaluators {
		wg.Add(1)
		go func(id, role string) {
			defer wg.Done()
			_, err := store.Update(record.ID, func(a Appraisal) (Appraisal, error) {
				return SubmitRating(a, id, role, validScores(7), "Consistent delivery", time.Now().UTC())
			})
			if err != nil {
				t.Errorf("rating by %s: %v", id, err)
			}
		}(evaluator.id, evaluator.role)
	}
	wg.Wait()

	got, err := store.Get(record.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Ratings) != 3 {
		t.Fatalf("expected 3 ratings, got %d", len(got.Ratings))
	}
	if got.Status != StatusPendingReview {
		t.Fatalf("expected pending review, got %s", got.Status)
	}
	if got.AverageRating == nil || *got.AverageRating != 7.0 {
		t.Fatalf("expected average 7.0, got %v", got.AverageRating)
	}
}

func TestStoreListByEmployee(t *testing.T) {
	store := NewStore()
	if err := store.Append(New("7", "April", 2025)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(New("7", "July", 2025)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got := store.ListByEmployee("7"); len(got) != 2 {
		t.Fatalf("expected 2 cycles, got %d", len(got))
	}
}
