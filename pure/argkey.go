package pure

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/google/uuid"
)

// KeyKind tells how an ArgKey is compared against other keys at the same position.
type KeyKind uint8

const (
	// KindValue keys are equal when their values are equal under ==.
	KindValue KeyKind = iota + 1

	// KindIdentity keys are equal when they refer to the same underlying object.
	KindIdentity
)

func (k KeyKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindIdentity:
		return "identity"
	default:
		return "invalid"
	}
}

// ArgKey is one argument of a call as seen by the args trie.
//
// The kind is fixed by the constructor used to build the key, so the comparison
// rule of a position follows the declared type of the argument:
//
//	pure.Value("a")        // compared by value
//	pure.Ref(&cfg)         // compared by identity of cfg
//	pure.Slice(items)      // compared by identity of the backing array
//	pure.Null, pure.Undefined
type ArgKey struct {
	kind KeyKind
	id   any // comparable; the only part used for lookups
	raw  any // the argument as passed to the wrapped callable
}

// trieKey is the comparable projection of an ArgKey stored on trie edges.
type trieKey struct {
	kind KeyKind
	id   any
}

func (k ArgKey) trieKey() trieKey {
	return trieKey{kind: k.kind, id: k.id}
}

// Kind returns the comparison rule of the key.
func (k ArgKey) Kind() KeyKind { return k.kind }

// Value returns the original argument.
func (k ArgKey) Value() any { return k.raw }

// Equal reports whether both keys select the same trie edge.
func (k ArgKey) Equal(other ArgKey) bool {
	return k.trieKey() == other.trieKey()
}

func (k ArgKey) String() string {
	switch k.kind {
	case KindIdentity:
		return fmt.Sprintf("identity(%T@%p)", k.raw, k.ptr())
	case KindValue:
		if k.byAddress() {
			return fmt.Sprintf("value(%T@%p)", k.raw, k.ptr())
		}
		return fmt.Sprintf("value(%v)", k.raw)
	default:
		return "invalid"
	}
}

// PartitionKey is a stable string used only to spread keys over partitions.
// Two equal keys always share a partition key; the converse does not hold.
// Keys that compare by address are formatted by address, never by what they point to.
func (k ArgKey) PartitionKey() string {
	if k.kind == KindIdentity || k.byAddress() {
		return fmt.Sprintf("%T@%p", k.raw, k.ptr())
	}
	return fmt.Sprintf("%T:%v", k.raw, k.raw)
}

// byAddress reports whether a value key is a pointer, channel or unsafe.Pointer,
// all of which == compares by address.
func (k ArgKey) byAddress() bool {
	if k.kind != KindValue || k.id == nil {
		return false
	}
	switch reflect.ValueOf(k.id).Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func (k ArgKey) ptr() unsafe.Pointer {
	switch id := k.id.(type) {
	case sliceIdentity:
		return id.data
	case mapIdentity:
		return id.ptr
	default:
		return reflect.ValueOf(k.id).UnsafePointer()
	}
}

// Value builds a key compared by value.
//
// Pointers and channels are comparable in Go and already compare by identity, so
// Value(&x) behaves like Ref(&x). T may be an interface type; a dynamic value that is
// not comparable panics when the key is used, exactly like a Go map key would.
func Value[T comparable](v T) ArgKey {
	return ArgKey{kind: KindValue, id: v, raw: v}
}

// Ref builds a key compared by the identity of the pointee.
// Function arguments are keyed through a pointer to the function variable.
func Ref[T any](p *T) ArgKey {
	return ArgKey{kind: KindIdentity, id: p, raw: p}
}

type sliceIdentity struct {
	typ  reflect.Type
	data unsafe.Pointer
	len  int
	cap  int
}

// Slice builds a key compared by the identity of the slice: the same backing array
// seen with the same length and capacity.
//
// Zero-capacity slices may share the runtime's zero-size allocation and then collapse
// to a single key.
func Slice[E any](s []E) ArgKey {
	return ArgKey{
		kind: KindIdentity,
		id: sliceIdentity{
			typ:  reflect.TypeFor[[]E](),
			data: unsafe.Pointer(unsafe.SliceData(s)),
			len:  len(s),
			cap:  cap(s),
		},
		raw: s,
	}
}

type mapIdentity struct {
	typ reflect.Type
	ptr unsafe.Pointer
}

// Map builds a key compared by the identity of the map.
func Map[K comparable, V any](m map[K]V) ArgKey {
	return ArgKey{
		kind: KindIdentity,
		id: mapIdentity{
			typ: reflect.TypeFor[map[K]V](),
			ptr: reflect.ValueOf(m).UnsafePointer(),
		},
		raw: m,
	}
}

type null struct{}

func (null) String() string { return "null" }

type undefined struct{}

func (undefined) String() string { return "undefined" }

var (
	// Null is the "explicitly nothing" argument.
	Null = Value[any](null{})

	// Undefined is the "no value given" argument. It never equals Null.
	Undefined = Value[any](undefined{})
)

// Symbol is a unique token. A Symbol equals only itself and its copies,
// never another Symbol built with the same description.
type Symbol struct {
	id          uuid.UUID
	description string
}

// NewSymbol returns a fresh Symbol.
func NewSymbol(description string) Symbol {
	return Symbol{id: uuid.New(), description: description}
}

func (s Symbol) Description() string { return s.description }

func (s Symbol) String() string {
	return fmt.Sprintf("Symbol(%s)", s.description)
}

// Key returns the ArgKey of the symbol.
func (s Symbol) Key() ArgKey {
	return Value(s)
}
