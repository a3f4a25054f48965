package snapshot

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements Store in memory. It counts calls per operation and
// can be told to fail specific operations, which makes it suitable for
// exercising orchestration failure paths.
type MemoryStore struct {
	mu        sync.Mutex
	snapshots map[string]Descriptor
	tags      map[string][]Tag
	now       func() time.Time

	createErr   error
	listErr     error
	deleteErrs  map[string]error
	createCalls int
	listCalls   int
	deleteCalls int
}

// NewMemoryStore creates an empty in-memory store. Created snapshots are
// stamped with time.Now unless SetClock is used.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots:  make(map[string]Descriptor),
		tags:       make(map[string][]Tag),
		deleteErrs: make(map[string]error),
		now:        time.Now,
	}
}

// SetClock overrides the creation timestamp source.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Put seeds the store with an existing snapshot.
func (s *MemoryStore) Put(d Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[d.Identifier] = d
}

// FailCreate makes every subsequent Create return err.
func (s *MemoryStore) FailCreate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createErr = err
}

// FailList makes every subsequent List return err.
func (s *MemoryStore) FailList(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listErr = err
}

// FailDelete makes Delete of identifier return err.
func (s *MemoryStore) FailDelete(identifier string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteErrs[identifier] = err
}

// Create stores a new available snapshot.
func (s *MemoryStore) Create(ctx context.Context, clusterID, identifier string, tags []Tag) (*Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, exists := s.snapshots[identifier]; exists {
		return nil, fmt.Errorf("snapshot %q already exists", identifier)
	}

	d := Descriptor{
		Identifier:        identifier,
		ClusterIdentifier: clusterID,
		CreatedAt:         s.now(),
		Status:            "available",
	}
	s.snapshots[identifier] = d
	s.tags[identifier] = append([]Tag(nil), tags...)

	return &d, nil
}

// List returns the snapshots of clusterID ordered by creation time.
func (s *MemoryStore) List(ctx context.Context, clusterID string) ([]Descriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}

	var out []Descriptor
	for _, d := range s.snapshots {
		if d.ClusterIdentifier == "" || d.ClusterIdentifier == clusterID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

// Delete removes identifier from the store.
func (s *MemoryStore) Delete(ctx context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteCalls++
	if err := s.deleteErrs[identifier]; err != nil {
		return err
	}
	if _, exists := s.snapshots[identifier]; !exists {
		return fmt.Errorf("snapshot %q not found", identifier)
	}

	delete(s.snapshots, identifier)
	delete(s.tags, identifier)
	return nil
}

// Has reports whether identifier is present.
func (s *MemoryStore) Has(identifier string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.snapshots[identifier]
	return ok
}

// Tags returns the tags identifier was created with.
func (s *MemoryStore) Tags(identifier string) []Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Tag(nil), s.tags[identifier]...)
}

// Calls returns the number of Create, List and Delete calls made so far.
func (s *MemoryStore) Calls() (create, list, del int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCalls, s.listCalls, s.deleteCalls
}
