package reactivity

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Key addresses one observable location of a target: a field name or Symbol
// for objects, an int index or LengthKey for arrays, any comparable value for
// maps and sets.
type Key = any

// Symbol is a reserved key that can never collide with user field names.
// Symbols minted from the same description are equal.
type Symbol uint64

var symbolNames sync.Map

// SymbolFor returns the symbol registered under desc.
func SymbolFor(desc string) Symbol {
	s := Symbol(xxhash.Sum64String(desc))
	symbolNames.LoadOrStore(s, desc)
	return s
}

func (s Symbol) String() string {
	if desc, ok := symbolNames.Load(s); ok {
		return fmt.Sprintf("Symbol(%s)", desc)
	}
	return fmt.Sprintf("Symbol(%d)", uint64(s))
}

const (
	// LengthKey is the dependency key of an array's length.
	LengthKey = "length"
	// ValueKey is the key reported in debugger events for refs.
	ValueKey = "value"
)

// reservedKey is a dependency key owned by the engine. Its type is
// unexported, so no user key can ever equal one.
type reservedKey struct{ name string }

func (k reservedKey) String() string { return k.name }

var (
	// IterateKey is tracked by anything that enumerates a target's members.
	IterateKey Key = reservedKey{"iterate"}
	// MapKeyIterateKey is tracked by key-only map iteration so that value
	// updates don't invalidate it.
	MapKeyIterateKey Key = reservedKey{"map key iterate"}
)

var (
	SymbolIterator    = SymbolFor("Symbol.iterator")
	SymbolHasInstance = SymbolFor("Symbol.hasInstance")
	SymbolToPrimitive = SymbolFor("Symbol.toPrimitive")
	SymbolToStringTag = SymbolFor("Symbol.toStringTag")
)

var (
	builtInSymbols = mapset.NewSet[Key](
		SymbolIterator,
		SymbolHasInstance,
		SymbolToPrimitive,
		SymbolToStringTag,
	)
	nonTrackableKeys = mapset.NewSet[Key]("__proto__")
)

// skipTracking reports whether reads of key bypass dependency tracking.
func skipTracking(key Key) bool {
	if _, ok := key.(Symbol); ok {
		return builtInSymbols.Contains(key)
	}
	if _, ok := key.(string); ok {
		return nonTrackableKeys.Contains(key)
	}
	return false
}

type OpType string

const (
	OpGet     OpType = "get"
	OpHas     OpType = "has"
	OpIterate OpType = "iterate"

	OpSet    OpType = "set"
	OpAdd    OpType = "add"
	OpDelete OpType = "delete"
	OpClear  OpType = "clear"
)
