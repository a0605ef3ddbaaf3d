package flatten

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/jsonxl-go/pkg/jsonxl/tree"
)

func rowsEqual(a, b []Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestFlattenSingleRecord(t *testing.T) {
	n := tree.Object{"a": tree.Object{
		"b": tree.Leaf{Value: tree.Number(1)},
		"c": tree.Leaf{Value: tree.Number(2)},
	}}

	rs, err := Flatten(n)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	wantCols := []string{"a.b", "a.c"}
	if !reflect.DeepEqual(rs.Columns, wantCols) {
		t.Errorf("columns = %v, expected %v", rs.Columns, wantCols)
	}
	wantRows := []Row{{"a.b": tree.Number(1), "a.c": tree.Number(2)}}
	if !rowsEqual(rs.Rows, wantRows) {
		t.Errorf("rows = %v, expected %v", rs.Rows, wantRows)
	}
}

func TestFlattenArrayExpansion(t *testing.T) {
	n := tree.Object{"items": tree.Array{
		tree.Object{"x": tree.Leaf{Value: tree.Number(1)}},
		tree.Object{"x": tree.Leaf{Value: tree.Number(2)}},
	}}

	rs, err := Flatten(n)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	wantCols := []string{"items.0.x", "items.1.x"}
	if !reflect.DeepEqual(rs.Columns, wantCols) {
		t.Errorf("columns = %v, expected %v", rs.Columns, wantCols)
	}
	wantRows := []Row{
		{"items.0.x": tree.Number(1)},
		{"items.1.x": tree.Number(2)},
	}
	if !rowsEqual(rs.Rows, wantRows) {
		t.Errorf("rows = %v, expected %v", rs.Rows, wantRows)
	}
}

func TestFlattenReplication(t *testing.T) {
	// The single-row subtree under "m" must be replicated across both rows
	// produced by the array under "a".
	n := tree.Object{
		"a": tree.Array{
			tree.Object{"p": tree.Leaf{Value: tree.Number(3)}},
			tree.Object{"p": tree.Leaf{Value: tree.Number(4)}},
		},
		"m": tree.Object{"x": tree.Object{"q": tree.Leaf{Value: tree.Number(1)}}},
	}
	if err := tree.ValidateDepth(n); err != nil {
		t.Fatalf("fixture is not uniform depth: %v", err)
	}

	rs, err := Flatten(n)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	wantRows := []Row{
		{"a.0.p": tree.Number(3), "m.x.q": tree.Number(1)},
		{"a.1.p": tree.Number(4), "m.x.q": tree.Number(1)},
	}
	if !rowsEqual(rs.Rows, wantRows) {
		t.Errorf("rows = %v, expected %v", rs.Rows, wantRows)
	}
}

func TestFlattenBareScalarRoot(t *testing.T) {
	rs, err := Flatten(tree.Leaf{Value: tree.String("solo")})
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if len(rs.Columns) != 1 || rs.Columns[0] != "" {
		t.Errorf("expected single empty column, got %v", rs.Columns)
	}
	if len(rs.Rows) != 1 || rs.Rows[0][""] != tree.String("solo") {
		t.Errorf("unexpected rows %v", rs.Rows)
	}
}

func TestFlattenSkipsEmptyContainers(t *testing.T) {
	n := tree.Object{
		"a": tree.Object{"b": tree.Leaf{Value: tree.Number(1)}},
		"e": tree.Array{},
		"o": tree.Object{},
	}

	rs, err := Flatten(n)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	wantCols := []string{"a.b"}
	if !reflect.DeepEqual(rs.Columns, wantCols) {
		t.Errorf("columns = %v, expected %v", rs.Columns, wantCols)
	}
	if len(rs.Rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rs.Rows))
	}
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	trees := []tree.Node{
		tree.Leaf{Value: tree.Number(7)},
		tree.Object{"a": tree.Object{"b": tree.Leaf{Value: tree.Number(1)}, "c": tree.Leaf{Value: tree.Number(2)}}},
		tree.Object{"items": tree.Array{
			tree.Object{"x": tree.Leaf{Value: tree.Number(1)}},
			tree.Object{"x": tree.Leaf{Value: tree.Number(2)}},
		}},
		tree.Array{
			tree.Object{"k": tree.Leaf{Value: tree.String("v1")}},
			tree.Object{"k": tree.Leaf{Value: tree.String("v2")}},
		},
		tree.Object{
			"a": tree.Array{
				tree.Object{"p": tree.Leaf{Value: tree.Boolean(true)}},
				tree.Object{"p": tree.Leaf{Value: tree.Boolean(false)}},
			},
			"m": tree.Object{"x": tree.Object{"q": tree.Leaf{Value: tree.String("shared")}}},
		},
		tree.Object{
			"a": tree.Array{tree.Leaf{Value: tree.Number(1)}, tree.Leaf{Value: tree.Number(2)}},
			"b": tree.Array{tree.Leaf{Value: tree.Number(3)}, tree.Leaf{Value: tree.Number(4)}},
		},
	}

	for i, orig := range trees {
		if err := tree.ValidateDepth(orig); err != nil {
			t.Fatalf("tree %d is not uniform depth: %v", i, err)
		}
		rs, err := Flatten(orig)
		if err != nil {
			t.Fatalf("tree %d: Flatten failed: %v", i, err)
		}
		back, err := Unflatten(rs)
		if err != nil {
			t.Fatalf("tree %d: Unflatten failed: %v", i, err)
		}
		if !tree.Equal(orig, back) {
			t.Errorf("tree %d: round trip changed %#v into %#v", i, orig, back)
		}
	}
}

func TestFlattenRejectsSeparatorInKey(t *testing.T) {
	// A key containing the separator would flatten to the same column as
	// genuine nesting: {"a.b": 1} and {"a": {"b": 1}} both encode as
	// column "a.b", and unflattening always rebuilds the nested form.
	n := tree.Object{"a.b": tree.Leaf{Value: tree.Number(1)}}

	_, err := Flatten(n)
	if err == nil {
		t.Fatal("expected error for key containing the path separator")
	}
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
	if serr.Column != "a.b" {
		t.Errorf("expected offending key %q, got %q", "a.b", serr.Column)
	}

	nested := tree.Object{"outer": tree.Object{"a.b": tree.Leaf{Value: tree.Number(1)}}}
	if _, err := Flatten(nested); err == nil {
		t.Error("expected error for nested key containing the path separator")
	}
}

func TestFlattenRowsShareColumnsUnevenly(t *testing.T) {
	// Replication across an array produces rows that do not all reference
	// the same columns; the writer turns the gaps into blank cells.
	n := tree.Object{
		"a": tree.Array{
			tree.Object{"p": tree.Leaf{Value: tree.Number(3)}},
			tree.Object{"p": tree.Leaf{Value: tree.Number(4)}},
		},
		"m": tree.Object{"x": tree.Object{"q": tree.Leaf{Value: tree.Number(1)}}},
	}

	rs, err := Flatten(n)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if len(rs.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %v", rs.Columns)
	}
	if _, ok := rs.Rows[0]["a.1.p"]; ok {
		t.Error("row 0 should not carry a value for a.1.p")
	}
}
