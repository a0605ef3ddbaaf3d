package tree

import (
	"fmt"
	"strconv"
)

// DepthMismatchError reports a leaf whose nesting depth differs from the
// depth established by the first leaf visited.
type DepthMismatchError struct {
	// Path is the root-to-leaf path of the offending leaf.
	Path string
	// Expected is the depth set by the first leaf.
	Expected int
	// Actual is the depth of the offending leaf.
	Actual int
}

func (e *DepthMismatchError) Error() string {
	return fmt.Sprintf("leaf %q at depth %d, expected depth %d", e.Path, e.Actual, e.Expected)
}

// ValidateDepth checks that every leaf sits at the same nesting depth,
// counting one path segment per object key or array index. The first
// mismatching leaf aborts the walk. Trees without leaves pass, as does a
// bare scalar root (depth 0). Container kinds are not checked and the tree
// is never mutated.
func ValidateDepth(n Node) error {
	w := depthWalker{expected: -1}
	return w.walk(n, "", 0)
}

type depthWalker struct {
	expected int
}

func (w *depthWalker) walk(n Node, path string, depth int) error {
	switch t := n.(type) {
	case Leaf:
		if w.expected < 0 {
			w.expected = depth
			return nil
		}
		if depth != w.expected {
			return &DepthMismatchError{Path: path, Expected: w.expected, Actual: depth}
		}
	case Object:
		for _, k := range SortedKeys(t) {
			if err := w.walk(t[k], JoinPath(path, k), depth+1); err != nil {
				return err
			}
		}
	case Array:
		for i, child := range t {
			if err := w.walk(child, JoinPath(path, strconv.Itoa(i)), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
