package clubstate

import (
	"bytes"
	"encoding/json"

	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

// Merger is the contract every cached entity satisfies: identity by snowflake
// ID and an in-place, presence-aware merge of a partial payload.
type Merger[P any] interface {
	EntityID() snowflake.ID
	Merge(P)
}

// Registry is an insertion-ordered mapping from snowflake ID to one entity
// type. Add constructs or merges, Update merges only, and iteration always
// follows insertion order. Entities are mutated in place; every other holder
// of a reference observes the merge.
type Registry[T Merger[P], P any] struct {
	ctor  func(snowflake.ID, P) (T, error)
	ids   []snowflake.ID
	items map[snowflake.ID]T
}

// NewRegistry creates an empty registry whose Add constructs missing entities
// via ctor.
func NewRegistry[T Merger[P], P any](ctor func(snowflake.ID, P) (T, error)) *Registry[T, P] {
	return &Registry[T, P]{
		ctor:  ctor,
		items: make(map[snowflake.ID]T),
	}
}

// Add looks up the entity by id, merging the payload into it when present and
// constructing it otherwise. The stored entity is returned either way.
func (r *Registry[T, P]) Add(id snowflake.ID, p P) (T, error) {
	if existing, ok := r.items[id]; ok {
		existing.Merge(p)
		return existing, nil
	}
	created, err := r.ctor(id, p)
	if err != nil {
		var zero T
		return zero, err
	}
	r.ids = append(r.ids, id)
	r.items[id] = created
	return created, nil
}

// Update merges the payload into an existing entity. It reports false, and
// does nothing, when no entity with that id exists; patch-style payloads like
// presence and voice updates must never construct.
func (r *Registry[T, P]) Update(id snowflake.ID, p P) (T, bool) {
	existing, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	existing.Merge(p)
	return existing, true
}

// Get returns the entity with the given id.
func (r *Registry[T, P]) Get(id snowflake.ID) (T, bool) {
	item, ok := r.items[id]
	return item, ok
}

// Has reports whether an entity with the given id is registered.
func (r *Registry[T, P]) Has(id snowflake.ID) bool {
	_, ok := r.items[id]
	return ok
}

// Delete removes the entity with the given id, reporting whether it existed.
func (r *Registry[T, P]) Delete(id snowflake.ID) bool {
	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	for i, known := range r.ids {
		if known == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered entities.
func (r *Registry[T, P]) Len() int {
	return len(r.items)
}

// IDs returns the registered ids in insertion order.
func (r *Registry[T, P]) IDs() []snowflake.ID {
	out := make([]snowflake.ID, len(r.ids))
	copy(out, r.ids)
	return out
}

// Values returns the registered entities in insertion order.
func (r *Registry[T, P]) Values() []T {
	out := make([]T, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.items[id])
	}
	return out
}

// ForEach visits every entity in insertion order, stopping early when fn
// returns false.
func (r *Registry[T, P]) ForEach(fn func(T) bool) {
	for _, id := range r.ids {
		if !fn(r.items[id]) {
			return
		}
	}
}

// MarshalJSON renders the registry as a JSON array of its entities in
// insertion order, using each entity's own projection.
func (r *Registry[T, P]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, id := range r.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		entry, err := json.Marshal(r.items[id])
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
