// Package xlsx adapts excelize workbooks to the row model used by the
// transcoder. Column names are taken verbatim from the header row and cell
// typing is inferred here, so the core never re-interprets values.
package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/flatten"
	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
)

// ReadFile loads the first sheet of a workbook into a RowSet. The header
// row supplies the column names; blank cells are omitted from their row.
func ReadFile(path string) (*flatten.RowSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &flatten.RowSet{}, nil
	}

	columns := make([]string, 0, len(rows[0]))
	seen := make(map[string]bool, len(rows[0]))
	for i, name := range rows[0] {
		if name == "" {
			return nil, fmt.Errorf("header cell %d is empty", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q in header", name)
		}
		seen[name] = true
		columns = append(columns, name)
	}

	rs := &flatten.RowSet{Columns: columns}
	for ri, raw := range rows[1:] {
		for ci := len(columns); ci < len(raw); ci++ {
			if raw[ci] != "" {
				return nil, fmt.Errorf("row %d has a value beyond the last named column", ri+2)
			}
		}
		row := make(flatten.Row, len(columns))
		for ci, col := range columns {
			if ci >= len(raw) || raw[ci] == "" {
				continue
			}
			row[col] = parseScalar(raw[ci])
		}
		if len(row) == 0 {
			continue
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}

// parseScalar infers the scalar kind of a cell string: boolean, then
// number, then plain text.
func parseScalar(s string) tree.Scalar {
	if strings.EqualFold(s, "TRUE") {
		return tree.Boolean(true)
	}
	if strings.EqualFold(s, "FALSE") {
		return tree.Boolean(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return tree.Number(f)
	}
	return tree.String(s)
}
