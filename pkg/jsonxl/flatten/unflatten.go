package flatten

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
)

type builderKind int

const (
	kindUnset builderKind = iota
	kindLeaf
	kindObject
	kindArray
)

// builder is a mutable reconstruction node. Nodes take their kind on first
// use; a later row using the same position differently is a reconstruction
// error.
type builder struct {
	kind builderKind
	leaf tree.Scalar
	obj  map[string]*builder
	arr  map[int]*builder
}

// Unflatten rebuilds the nested tree encoded by the row set's column paths.
// A segment that parses as a non-negative integer designates an array
// index, anything else an object key. A row set with no cell values
// reconstructs as an empty object.
func Unflatten(rs *RowSet) (tree.Node, error) {
	root := &builder{}
	for _, row := range rs.Rows {
		for _, col := range rs.Columns {
			val, ok := row[col]
			if !ok {
				continue
			}
			if err := assign(root, col, val); err != nil {
				return nil, err
			}
		}
	}
	if root.kind == kindUnset {
		return tree.Object{}, nil
	}
	return materialize(root, "")
}

func assign(root *builder, col string, val tree.Scalar) error {
	cur := root
	for _, seg := range splitColumn(col) {
		next, err := cur.enter(seg, col)
		if err != nil {
			return err
		}
		cur = next
	}

	switch cur.kind {
	case kindUnset:
		cur.kind = kindLeaf
		cur.leaf = val
	case kindLeaf:
		if cur.leaf != val {
			return &ReconstructionError{Column: col, Reason: "conflicting values for the same path"}
		}
	default:
		return &ReconstructionError{Column: col, Reason: "path names both a value and a container"}
	}
	return nil
}

// enter descends into the child designated by seg, creating containers as
// needed and rejecting container-kind conflicts.
func (b *builder) enter(seg, col string) (*builder, error) {
	if idx, ok := parseIndex(seg); ok {
		switch b.kind {
		case kindUnset:
			b.kind = kindArray
			b.arr = make(map[int]*builder)
		case kindArray:
		case kindObject:
			return nil, &ReconstructionError{Column: col,
				Reason: fmt.Sprintf("segment %q is an array index here but an object key in another row", seg)}
		case kindLeaf:
			return nil, &ReconstructionError{Column: col, Reason: "path extends through a value"}
		}
		child := b.arr[idx]
		if child == nil {
			child = &builder{}
			b.arr[idx] = child
		}
		return child, nil
	}

	switch b.kind {
	case kindUnset:
		b.kind = kindObject
		b.obj = make(map[string]*builder)
	case kindObject:
	case kindArray:
		return nil, &ReconstructionError{Column: col,
			Reason: fmt.Sprintf("segment %q is an object key here but an array index in another row", seg)}
	case kindLeaf:
		return nil, &ReconstructionError{Column: col, Reason: "path extends through a value"}
	}
	child := b.obj[seg]
	if child == nil {
		child = &builder{}
		b.obj[seg] = child
	}
	return child, nil
}

// materialize freezes a builder into a tree. Arrays must cover indices
// 0..n-1 with no gaps.
func materialize(b *builder, path string) (tree.Node, error) {
	switch b.kind {
	case kindLeaf:
		return tree.Leaf{Value: b.leaf}, nil
	case kindObject:
		out := make(tree.Object, len(b.obj))
		for k, child := range b.obj {
			n, err := materialize(child, tree.JoinPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case kindArray:
		out := make(tree.Array, len(b.arr))
		for i := 0; i < len(b.arr); i++ {
			child, ok := b.arr[i]
			if !ok {
				return nil, &ReconstructionError{Column: tree.JoinPath(path, strconv.Itoa(i)),
					Reason: "array index never assigned"}
			}
			n, err := materialize(child, tree.JoinPath(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}
	return nil, &ReconstructionError{Column: path, Reason: "position has no value"}
}

// splitColumn splits a column name into path segments. The empty column
// name is the bare scalar root and has no segments.
func splitColumn(col string) []string {
	if col == "" {
		return nil
	}
	return strings.Split(col, tree.PathSeparator)
}

func parseIndex(seg string) (int, bool) {
	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
