// Package flatten implements the transcoding between nested trees and flat
// tabular rows. Column names encode full root-to-leaf paths, so Flatten and
// Unflatten are exact inverses for uniform-depth trees.
package flatten

import "github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"

// Row maps a column name (the dotted root-to-leaf path) to its scalar
// value. A row holds only the columns it has values for; a blank cell is
// simply an absent entry.
type Row map[string]tree.Scalar

// RowSet is an ordered sequence of rows together with the column order
// produced by flattening or read from a sheet header.
type RowSet struct {
	// Columns lists every distinct column name in deterministic order.
	Columns []string
	// Rows holds the row data in record order.
	Rows []Row
}
