package flatten

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
)

// block is the flattening result for one subtree: column names relative to
// the subtree root, in deterministic order, and the rows referencing them.
type block struct {
	cols []string
	rows []Row
}

// Flatten converts a tree into rows. Sibling leaves of one record share a
// row while array elements expand into separate rows; a single-row sibling
// is replicated across every row of an expanding sibling. Empty containers
// contribute nothing.
func Flatten(n tree.Node) (*RowSet, error) {
	b, err := flattenNode(n)
	if err != nil {
		return nil, err
	}
	return &RowSet{Columns: b.cols, Rows: b.rows}, nil
}

func flattenNode(n tree.Node) (block, error) {
	switch t := n.(type) {
	case tree.Leaf:
		return block{cols: []string{""}, rows: []Row{{"": t.Value}}}, nil
	case tree.Array:
		return flattenArray(t)
	case tree.Object:
		return flattenObject(t)
	}
	return block{}, &StructuralError{Reason: fmt.Sprintf("unknown node type %T", n)}
}

// flattenArray concatenates element blocks: each element's rows stay
// independent rows, with the element index prepended to every column.
func flattenArray(a tree.Array) (block, error) {
	var out block
	for i, child := range a {
		cb, err := flattenNode(child)
		if err != nil {
			return block{}, err
		}
		if len(cb.rows) == 0 {
			continue
		}
		cb.prefix(strconv.Itoa(i))
		out.cols = append(out.cols, cb.cols...)
		out.rows = append(out.rows, cb.rows...)
	}
	return out, nil
}

// flattenObject merges child blocks pairwise as a cartesian product, so a
// scalar field is replicated across every row produced by an expanding
// sibling.
func flattenObject(o tree.Object) (block, error) {
	merged := block{rows: []Row{{}}}
	for _, k := range tree.SortedKeys(o) {
		if strings.Contains(k, tree.PathSeparator) {
			// Such a key could not be told apart from nesting when the
			// column name is split back into segments.
			return block{}, &StructuralError{Column: k, Reason: "object key contains the path separator"}
		}
		cb, err := flattenNode(o[k])
		if err != nil {
			return block{}, err
		}
		if len(cb.rows) == 0 {
			continue
		}
		cb.prefix(k)
		merged.cols = append(merged.cols, cb.cols...)

		cross := make([]Row, 0, len(merged.rows)*len(cb.rows))
		for _, base := range merged.rows {
			for _, add := range cb.rows {
				r, err := mergeRows(base, add)
				if err != nil {
					return block{}, err
				}
				cross = append(cross, r)
			}
		}
		merged.rows = cross
	}
	if len(merged.cols) == 0 {
		return block{}, nil
	}
	return merged, nil
}

// prefix prepends a path segment to every column of the block.
func (b *block) prefix(segment string) {
	for i, c := range b.cols {
		b.cols[i] = tree.JoinPath(segment, c)
	}
	for ri, r := range b.rows {
		nr := make(Row, len(r))
		for c, v := range r {
			nr[tree.JoinPath(segment, c)] = v
		}
		b.rows[ri] = nr
	}
}

func mergeRows(a, b Row) (Row, error) {
	out := make(Row, len(a)+len(b))
	for c, v := range a {
		out[c] = v
	}
	for c, v := range b {
		if _, dup := out[c]; dup {
			return nil, &StructuralError{Column: c, Reason: "column produced twice in one record"}
		}
		out[c] = v
	}
	return out, nil
}
