// Package tree defines the nested value model shared by both conversion
// directions.
package tree

import "sort"

// Node is a value in a nested document: a Leaf scalar, an Array, or an
// Object.
type Node interface {
	node()
}

// Object maps string keys to child nodes.
type Object map[string]Node

// Array is an ordered sequence of child nodes.
type Array []Node

// Leaf is a terminal scalar value.
type Leaf struct {
	Value Scalar
}

func (Object) node() {}
func (Array) node()  {}
func (Leaf) node()   {}

// Equal reports structural equality of two trees. Array order matters,
// object key order does not.
func Equal(a, b Node) bool {
	switch at := a.(type) {
	case Leaf:
		bt, ok := b.(Leaf)
		return ok && at.Value == bt.Value
	case Array:
		bt, ok := b.(Array)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case Object:
		bt, ok := b.(Object)
		if !ok || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, ok := bt[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// SortedKeys returns the object's keys in ascending order. Traversals use it
// so column order and error reporting are deterministic.
func SortedKeys(o Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
