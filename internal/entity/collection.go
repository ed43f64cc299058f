// Package entity provides a normalized, id-keyed collection: an ordered list
// of unique ids plus a map from id to entity.
package entity

import "slices"

// Collection stores entities of type T keyed by the id that idOf extracts.
// When a comparator is set, ids stay sorted by it after every write; otherwise
// they keep insertion order. Ties keep insertion order too.
type Collection[T any] struct {
	ids      []string
	entities map[string]T
	idOf     func(T) string
	compare  func(a, b T) int
}

// New creates an empty collection. compare may be nil.
func New[T any](idOf func(T) string, compare func(a, b T) int) Collection[T] {
	return Collection[T]{
		ids:      []string{},
		entities: make(map[string]T),
		idOf:     idOf,
		compare:  compare,
	}
}

// AddOne inserts e unless its id is already present.
func (c *Collection[T]) AddOne(e T) {
	id := c.idOf(e)
	if _, ok := c.entities[id]; ok {
		return
	}
	c.entities[id] = e
	c.ids = append(c.ids, id)
	c.resort()
}

// UpsertOne inserts e, or overwrites the entity already stored under its id.
func (c *Collection[T]) UpsertOne(e T) {
	c.UpsertMany([]T{e})
}

// UpsertMany upserts every entity in order; a repeated id keeps the last value.
func (c *Collection[T]) UpsertMany(es []T) {
	for _, e := range es {
		id := c.idOf(e)
		if _, ok := c.entities[id]; !ok {
			c.ids = append(c.ids, id)
		}
		c.entities[id] = e
	}
	c.resort()
}

// SetAll replaces the whole collection with es.
func (c *Collection[T]) SetAll(es []T) {
	c.ids = make([]string, 0, len(es))
	c.entities = make(map[string]T, len(es))
	c.UpsertMany(es)
}

// UpdateOne applies fn to the entity stored under id. It reports false, and
// changes nothing, when id is absent.
func (c *Collection[T]) UpdateOne(id string, fn func(*T)) bool {
	e, ok := c.entities[id]
	if !ok {
		return false
	}
	fn(&e)
	// the id is owned by the collection
	if c.idOf(e) != id {
		return false
	}
	c.entities[id] = e
	c.resort()
	return true
}

// Each applies fn to every entity in id order.
func (c *Collection[T]) Each(fn func(*T)) {
	for _, id := range c.ids {
		e := c.entities[id]
		fn(&e)
		c.entities[id] = e
	}
	c.resort()
}

// IDs returns a copy of the ordered ids.
func (c Collection[T]) IDs() []string {
	return slices.Clone(c.ids)
}

// All returns the entities in id order.
func (c Collection[T]) All() []T {
	out := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.entities[id])
	}
	return out
}

// ByID looks up a single entity.
func (c Collection[T]) ByID(id string) (T, bool) {
	e, ok := c.entities[id]
	return e, ok
}

func (c Collection[T]) Len() int {
	return len(c.ids)
}

// Clone returns a copy that shares no ids slice or entity map with c.
// Entities are copied by value.
func (c Collection[T]) Clone() Collection[T] {
	out := Collection[T]{
		ids:      slices.Clone(c.ids),
		entities: make(map[string]T, len(c.entities)),
		idOf:     c.idOf,
		compare:  c.compare,
	}
	if out.ids == nil {
		out.ids = []string{}
	}
	for id, e := range c.entities {
		out.entities[id] = e
	}
	return out
}

func (c *Collection[T]) resort() {
	if c.compare == nil {
		return
	}
	slices.SortStableFunc(c.ids, func(a, b string) int {
		return c.compare(c.entities[a], c.entities[b])
	})
}
