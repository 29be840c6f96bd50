package tree

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

// keyKind discriminates the Key variants.
type keyKind uint8

const (
	keyNone keyKind = iota
	keyString
	keyInt
	keyValue
	keyLocal
	keyGlobal
)

// Key is an optional identity token attached to a widget. Two keys are equal
// only when they have the same variant and the same payload, so Key values
// are directly comparable and usable as map keys.
//
// The zero Key means "no key".
type Key struct {
	kind keyKind
	str  string
	num  uint64
}

// StringKey creates a key from a string identifier.
func StringKey(s string) Key {
	return Key{kind: keyString, str: s}
}

// IntKey creates a key from an integer identifier.
func IntKey(i int) Key {
	return Key{kind: keyInt, num: uint64(i)}
}

// ValueKey creates a key by hashing an arbitrary value's string form.
// Suitable for identity derived from model data without a natural id.
func ValueKey(v any) Key {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T/%v", v, v)
	return Key{kind: keyValue, num: h.Sum64()}
}

var keyCounter atomic.Uint64

// LocalKey creates a unique key for use within one sibling list.
func LocalKey() Key {
	return Key{kind: keyLocal, num: keyCounter.Add(1)}
}

// GlobalKey creates a unique key valid across the whole tree.
func GlobalKey() Key {
	return Key{kind: keyGlobal, num: keyCounter.Add(1)}
}

// IsZero reports whether the key is the "no key" value.
func (k Key) IsZero() bool {
	return k.kind == keyNone
}

// String returns a debug representation of the key.
func (k Key) String() string {
	switch k.kind {
	case keyNone:
		return "Key(none)"
	case keyString:
		return fmt.Sprintf("Key(%q)", k.str)
	case keyInt:
		return fmt.Sprintf("Key(%d)", int64(k.num))
	case keyValue:
		return fmt.Sprintf("Key(value:%x)", k.num)
	case keyLocal:
		return fmt.Sprintf("Key(local:%d)", k.num)
	default:
		return fmt.Sprintf("Key(global:%d)", k.num)
	}
}
