package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID identifies a component kind at runtime.
type ID uint32

var nextID atomic.Uint32

// Kind is a typed component identifier. The phantom type parameter ties a
// kind to its component struct so the generic world accessors stay type-safe.
type Kind[T any] struct {
	id ID
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}

// Handle owns a component kind. Each component file declares one package-level
// handle per component type.
type Handle[T any] struct {
	kind Kind[T]
}

func New[T any]() Handle[T] {
	return Handle[T]{kind: Kind[T]{id: ID(nextID.Add(1))}}
}

func (h Handle[T]) Kind() Kind[T] {
	return h.kind
}
