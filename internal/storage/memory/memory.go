// Package memory is an in-process review store used by the "memory" search
// engine driver and by tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"review-srv/internal/model"
)

var (
	ErrNotFound = errors.New("memory: review not found")
	ErrConflict = errors.New("memory: review already exists")
)

// Driver stores reviews in a map guarded by a RWMutex.
type Driver struct {
	mu      sync.RWMutex
	indices map[string]struct{}
	reviews map[string]model.Review
}

// NewDriver creates an empty driver.
func NewDriver() *Driver {
	return &Driver{
		indices: make(map[string]struct{}),
		reviews: make(map[string]model.Review),
	}
}

// EnsureIndex records index and reports whether it was new.
func (d *Driver) EnsureIndex(_ context.Context, index string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.indices[index]; ok {
		return false
	}
	d.indices[index] = struct{}{}
	return true
}

// Create stores r and fails with ErrConflict if its id is taken.
func (d *Driver) Create(_ context.Context, r model.Review) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.reviews[r.ID]; ok {
		return fmt.Errorf("%w: %s", ErrConflict, r.ID)
	}
	d.reviews[r.ID] = r
	return nil
}

// Get returns the review stored under id.
func (d *Driver) Get(_ context.Context, id string) (model.Review, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	r, ok := d.reviews[id]
	if !ok {
		return model.Review{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, nil
}

// Put stores r, replacing any previous version.
func (d *Driver) Put(_ context.Context, r model.Review) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reviews[r.ID] = r
	return nil
}

// Delete removes id.
func (d *Driver) Delete(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.reviews[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(d.reviews, id)
	return nil
}

// List returns a copy of every review matching keep, ordered by id.
// A nil keep returns everything.
func (d *Driver) List(_ context.Context, keep func(model.Review) bool) []model.Review {
	d.mu.RLock()
	out := make([]model.Review, 0, len(d.reviews))
	for _, r := range d.reviews {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored reviews.
func (d *Driver) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.reviews)
}
